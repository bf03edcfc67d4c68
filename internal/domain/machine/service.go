package machine

import "context"

type MachineService interface {
	Create(ctx context.Context, req CreateMachineRequest) (MachineResponse, error)
	GetByID(ctx context.Context, id string) (MachineResponse, error)
	List(ctx context.Context) ([]MachineResponse, error)
	Update(ctx context.Context, id string, req UpdateMachineRequest) (MachineResponse, error)
	Delete(ctx context.Context, id string) error
}
