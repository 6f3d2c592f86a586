package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"warehouseapi/internal/model"
	"warehouseapi/internal/repository"
)

// WarehouseSummary is a warehouse with its supervisory staff.
type WarehouseSummary struct {
	model.Warehouse
	Employees      []model.Employee `json:"employees"`
	TotalEmployees int              `json:"total_employees"`
}

// WarehouseListResult lists every warehouse.
type WarehouseListResult struct {
	Status          string             `json:"status"`
	TotalWarehouses int                `json:"total_warehouses"`
	Warehouses      []WarehouseSummary `json:"warehouses"`
}

type CameraList struct {
	Total int            `json:"total_cameras"`
	Data  []model.Camera `json:"data"`
}

type VehicleList struct {
	Total int             `json:"total_vehicles"`
	Data  []model.Vehicle `json:"data"`
}

type EmployeeList struct {
	Total int              `json:"total_employees"`
	Data  []model.Employee `json:"data"`
}

// WarehouseDetail is a warehouse with everything attached to it.
type WarehouseDetail struct {
	Status    string          `json:"status"`
	Warehouse model.Warehouse `json:"warehouse"`
	Cameras   CameraList      `json:"cameras"`
	Vehicles  VehicleList     `json:"vehicles"`
	Employees EmployeeList    `json:"employees"`
}

// WarehouseService exposes warehouses and their staff, cameras and vehicles.
type WarehouseService interface {
	// List returns every warehouse with its supervisory employees.
	List(ctx context.Context) (*WarehouseListResult, error)

	// Get returns one warehouse with its cameras, vehicles and employees.
	Get(ctx context.Context, id string) (*WarehouseDetail, error)
}

type warehouseService struct {
	repo repository.WarehouseRepository
}

// NewWarehouseService constructs a new WarehouseService.
func NewWarehouseService(repo repository.WarehouseRepository) WarehouseService {
	return &warehouseService{repo: repo}
}

func (s *warehouseService) List(ctx context.Context) (*WarehouseListResult, error) {
	warehouses, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list warehouses: %w", err)
	}
	res := &WarehouseListResult{
		Status:     StatusSuccess,
		Warehouses: make([]WarehouseSummary, 0, len(warehouses)),
	}
	if len(warehouses) == 0 {
		return res, nil
	}

	staff, err := s.repo.ListSupervisors(ctx)
	if err != nil {
		return nil, fmt.Errorf("list supervisors: %w", err)
	}
	byWarehouse := make(map[string][]model.Employee)
	for _, e := range staff {
		byWarehouse[e.WarehouseID] = append(byWarehouse[e.WarehouseID], e)
	}

	for _, w := range warehouses {
		emps := byWarehouse[w.ID]
		if emps == nil {
			emps = []model.Employee{}
		}
		res.Warehouses = append(res.Warehouses, WarehouseSummary{
			Warehouse:      w,
			Employees:      emps,
			TotalEmployees: len(emps),
		})
	}
	res.TotalWarehouses = len(res.Warehouses)
	return res, nil
}

func (s *warehouseService) Get(ctx context.Context, id string) (*WarehouseDetail, error) {
	w, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", ErrWarehouseNotFound, id)
		}
		return nil, fmt.Errorf("find warehouse: %w", err)
	}

	var (
		cameras   []model.Camera
		vehicles  []model.Vehicle
		employees []model.Employee
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		if cameras, err = s.repo.ListCameras(gctx, id); err != nil {
			return fmt.Errorf("list cameras: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if vehicles, err = s.repo.ListVehicles(gctx, id); err != nil {
			return fmt.Errorf("list vehicles: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if employees, err = s.repo.ListEmployees(gctx, id); err != nil {
			return fmt.Errorf("list employees: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &WarehouseDetail{
		Status:    StatusSuccess,
		Warehouse: *w,
		Cameras:   CameraList{Total: len(cameras), Data: orEmpty(cameras)},
		Vehicles:  VehicleList{Total: len(vehicles), Data: orEmpty(vehicles)},
		Employees: EmployeeList{Total: len(employees), Data: orEmpty(employees)},
	}, nil
}

// orEmpty keeps JSON arrays from rendering as null.
func orEmpty[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
