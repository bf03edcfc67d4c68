package machine

import "context"

type MachineRepository interface {
	Create(ctx context.Context, m Machine) (Machine, error)
	GetByID(ctx context.Context, id string) (Machine, error)
	GetByIDs(ctx context.Context, ids []string) ([]Machine, error)
	List(ctx context.Context) ([]Machine, error)
	Update(ctx context.Context, m Machine) (Machine, error)
	Delete(ctx context.Context, id string) error
}
