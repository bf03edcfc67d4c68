package main

import (
	"fmt"
	"net/http"

	"github.com/Santonastaso/scheduler-demo-sub001/internal/config"
	appHTTP "github.com/Santonastaso/scheduler-demo-sub001/internal/handler/http"
	"github.com/Santonastaso/scheduler-demo-sub001/internal/pkg/database"
	"github.com/Santonastaso/scheduler-demo-sub001/internal/repository/postgresql"
	calendarService "github.com/Santonastaso/scheduler-demo-sub001/internal/service/calendar"
	machineService "github.com/Santonastaso/scheduler-demo-sub001/internal/service/machine"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	machineRepo := postgresql.NewMachineRepository(db)
	recordRepo := postgresql.NewRecordRepository(db)

	calendarSvc := calendarService.NewCalendarService(machineRepo, recordRepo)
	machineSvc := machineService.NewMachineService(machineRepo, recordRepo, calendarSvc)

	machineHandler := appHTTP.NewMachineHandler(machineSvc)
	calendarHandler := appHTTP.NewCalendarHandler(calendarSvc)

	router := appHTTP.NewRouter(
		machineHandler,
		calendarHandler,
		cfg.App.FrontendURL,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
