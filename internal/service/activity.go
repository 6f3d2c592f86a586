package service

import (
	"context"
	"fmt"
	"sort"

	"golang.org/x/sync/errgroup"

	"warehouseapi/internal/model"
	"warehouseapi/internal/repository"
)

// HourlyRange groups employee sightings within one clock hour.
type HourlyRange struct {
	HourRange       string              `json:"hour_range"`
	StartTime       string              `json:"start_time"`
	EndTime         string              `json:"end_time"`
	TotalLogs       int                 `json:"total_logs"`
	UniqueEmployees int                 `json:"unique_employees"`
	Logs            []model.EmployeeLog `json:"logs"`
}

type EmployeeLogsResult struct {
	Status          string        `json:"status"`
	Message         string        `json:"message,omitempty"`
	WarehouseID     string        `json:"warehouse_id"`
	CamID           string        `json:"cam_id"`
	Date            string        `json:"date"`
	TotalLogs       int           `json:"total_logs"`
	UniqueEmployees int           `json:"unique_employees"`
	HourlyRanges    []HourlyRange `json:"hourly_ranges"`
}

// ActionSummary totals gunny logs sharing an action.
type ActionSummary struct {
	Count     int   `json:"count"`
	TotalBags int64 `json:"total_bags"`
}

type GunnyLogsResult struct {
	Status        string                   `json:"status"`
	Message       string                   `json:"message,omitempty"`
	WarehouseID   string                   `json:"warehouse_id"`
	CamID         string                   `json:"cam_id"`
	Date          string                   `json:"date"`
	TotalLogs     int                      `json:"total_logs"`
	TotalBags     int64                    `json:"total_bags"`
	ActionSummary map[string]ActionSummary `json:"action_summary"`
	Logs          []model.GunnyLog         `json:"logs"`
}

type VehicleLogsResult struct {
	Status         string             `json:"status"`
	Message        string             `json:"message,omitempty"`
	WarehouseID    string             `json:"warehouse_id"`
	CamID          string             `json:"cam_id"`
	Date           string             `json:"date"`
	TotalLogs      int                `json:"total_logs"`
	UniqueVehicles int                `json:"unique_vehicles"`
	AccessSummary  map[string]int     `json:"access_summary"`
	Logs           []model.VehicleLog `json:"logs"`
}

// DashboardResult is the daily overview of a warehouse.
type DashboardResult struct {
	Status                         string `json:"status"`
	WarehouseID                    string `json:"warehouse_id"`
	Date                           string `json:"date"`
	TotalLoadedBags                int64  `json:"total_loaded_bags"`
	TotalUnloadedBags              int64  `json:"total_unloaded_bags"`
	TotalAuthorisedVehicles        int64  `json:"total_authorised_vehicles"`
	TotalUnauthorisedVehicles      int64  `json:"total_unauthorised_vehicles"`
	TotalEmployeeLogs              int64  `json:"total_employee_logs"`
	TotalUniqueAuthorisedEmployees int64  `json:"total_unique_authorised_employees"`
	TotalUnauthorisedEntries       int64  `json:"total_unauthorised_entries"`
}

type ActionBreakdown struct {
	Action          *string      `json:"action"`
	TotalCount      int64        `json:"total_count"`
	NumberOfEntries int64        `json:"number_of_entries"`
	FirstEntryTime  *model.Clock `json:"first_entry_time"`
	LastEntryTime   *model.Clock `json:"last_entry_time"`
}

// VehicleGunnyCount is the gunny bag activity attributed to one vehicle.
type VehicleGunnyCount struct {
	NumberPlate         string            `json:"number_plate"`
	ChunkIDs            []string          `json:"chunk_ids"`
	TotalBagsAllActions int64             `json:"total_bags_all_actions"`
	ActionBreakdown     []ActionBreakdown `json:"action_breakdown"`
}

type VehicleGunnyResult struct {
	Status         string              `json:"status"`
	Message        string              `json:"message,omitempty"`
	WarehouseID    string              `json:"warehouse_id"`
	CamID          string              `json:"cam_id"`
	Date           string              `json:"date"`
	TotalVehicles  int                 `json:"total_vehicles"`
	GrandTotalBags int64               `json:"grand_total_bags"`
	Vehicles       []VehicleGunnyCount `json:"vehicles"`
}

// ActivityService summarizes the activity logs recorded by cameras.
// Dates are YYYY-MM-DD; anything else yields ErrInvalidDate.
type ActivityService interface {
	EmployeeLogs(ctx context.Context, warehouseID, camID, date string) (*EmployeeLogsResult, error)
	GunnyLogs(ctx context.Context, warehouseID, camID, date string) (*GunnyLogsResult, error)
	VehicleLogs(ctx context.Context, warehouseID, camID, date string) (*VehicleLogsResult, error)
	Dashboard(ctx context.Context, warehouseID, date string) (*DashboardResult, error)
	VehicleGunnyCount(ctx context.Context, warehouseID, camID, date string) (*VehicleGunnyResult, error)
}

type activityService struct {
	repo repository.ActivityRepository
}

// NewActivityService constructs a new ActivityService.
func NewActivityService(repo repository.ActivityRepository) ActivityService {
	return &activityService{repo: repo}
}

func filterFor(warehouseID, camID, date string) (repository.ActivityFilter, error) {
	day, err := ParseDate(date)
	if err != nil {
		return repository.ActivityFilter{}, err
	}
	return repository.ActivityFilter{WarehouseID: warehouseID, CamID: camID, Date: day}, nil
}

func (s *activityService) EmployeeLogs(ctx context.Context, warehouseID, camID, date string) (*EmployeeLogsResult, error) {
	f, err := filterFor(warehouseID, camID, date)
	if err != nil {
		return nil, err
	}
	logs, err := s.repo.EmployeeLogs(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("employee logs: %w", err)
	}

	res := &EmployeeLogsResult{
		Status:       StatusSuccess,
		WarehouseID:  warehouseID,
		CamID:        camID,
		Date:         date,
		TotalLogs:    len(logs),
		HourlyRanges: []HourlyRange{},
	}
	if len(logs) == 0 {
		res.Message = "No employee logs found for the given criteria"
		return res, nil
	}

	byHour := make(map[int][]model.EmployeeLog)
	for _, l := range logs {
		if l.Time == nil {
			continue
		}
		h := l.Time.Hour()
		byHour[h] = append(byHour[h], l)
	}
	hours := make([]int, 0, len(byHour))
	for h := range byHour {
		hours = append(hours, h)
	}
	sort.Ints(hours)

	for _, h := range hours {
		hl := byHour[h]
		res.HourlyRanges = append(res.HourlyRanges, HourlyRange{
			HourRange:       fmt.Sprintf("%02d:00 - %02d:59", h, h),
			StartTime:       fmt.Sprintf("%02d:00", h),
			EndTime:         fmt.Sprintf("%02d:59", h),
			TotalLogs:       len(hl),
			UniqueEmployees: uniqueEmployees(hl),
			Logs:            hl,
		})
	}
	res.UniqueEmployees = uniqueEmployees(logs)
	return res, nil
}

func uniqueEmployees(logs []model.EmployeeLog) int {
	seen := make(map[string]struct{})
	for _, l := range logs {
		if l.EmpID != nil && *l.EmpID != "" {
			seen[*l.EmpID] = struct{}{}
		}
	}
	return len(seen)
}

func (s *activityService) GunnyLogs(ctx context.Context, warehouseID, camID, date string) (*GunnyLogsResult, error) {
	f, err := filterFor(warehouseID, camID, date)
	if err != nil {
		return nil, err
	}
	logs, err := s.repo.GunnyLogs(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("gunny logs: %w", err)
	}

	res := &GunnyLogsResult{
		Status:        StatusSuccess,
		WarehouseID:   warehouseID,
		CamID:         camID,
		Date:          date,
		TotalLogs:     len(logs),
		ActionSummary: map[string]ActionSummary{},
		Logs:          orEmpty(logs),
	}
	if len(logs) == 0 {
		res.Message = "No gunny bag logs found for the given criteria"
		return res, nil
	}
	for _, l := range logs {
		res.TotalBags += l.Count
		if l.Action == nil || *l.Action == "" {
			continue
		}
		sum := res.ActionSummary[*l.Action]
		sum.Count++
		sum.TotalBags += l.Count
		res.ActionSummary[*l.Action] = sum
	}
	return res, nil
}

func (s *activityService) VehicleLogs(ctx context.Context, warehouseID, camID, date string) (*VehicleLogsResult, error) {
	f, err := filterFor(warehouseID, camID, date)
	if err != nil {
		return nil, err
	}
	logs, err := s.repo.VehicleLogs(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("vehicle logs: %w", err)
	}

	res := &VehicleLogsResult{
		Status:        StatusSuccess,
		WarehouseID:   warehouseID,
		CamID:         camID,
		Date:          date,
		TotalLogs:     len(logs),
		AccessSummary: map[string]int{},
		Logs:          orEmpty(logs),
	}
	if len(logs) == 0 {
		res.Message = "No vehicle logs found for the given criteria"
		return res, nil
	}
	plates := make(map[string]struct{})
	for _, l := range logs {
		if l.NumberPlate != nil && *l.NumberPlate != "" {
			plates[*l.NumberPlate] = struct{}{}
		}
		if l.VehicleAccess != nil && *l.VehicleAccess != "" {
			res.AccessSummary[*l.VehicleAccess]++
		}
	}
	res.UniqueVehicles = len(plates)
	return res, nil
}

func (s *activityService) Dashboard(ctx context.Context, warehouseID, date string) (*DashboardResult, error) {
	f, err := filterFor(warehouseID, "", date)
	if err != nil {
		return nil, err
	}

	var (
		bags     model.BagTotals
		vehicles model.VehicleTotals
		emps     model.EmployeeTotals
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		if bags, err = s.repo.BagTotals(gctx, f); err != nil {
			return fmt.Errorf("bag totals: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if vehicles, err = s.repo.VehicleTotals(gctx, f); err != nil {
			return fmt.Errorf("vehicle totals: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if emps, err = s.repo.EmployeeTotals(gctx, f); err != nil {
			return fmt.Errorf("employee totals: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &DashboardResult{
		Status:                         StatusSuccess,
		WarehouseID:                    warehouseID,
		Date:                           date,
		TotalLoadedBags:                bags.Loaded,
		TotalUnloadedBags:              bags.Unloaded,
		TotalAuthorisedVehicles:        vehicles.Authorised,
		TotalUnauthorisedVehicles:      vehicles.Unauthorised,
		TotalEmployeeLogs:              emps.Logs,
		TotalUniqueAuthorisedEmployees: emps.UniqueAuthorised,
		TotalUnauthorisedEntries:       emps.UnauthorisedEntries,
	}, nil
}

func (s *activityService) VehicleGunnyCount(ctx context.Context, warehouseID, camID, date string) (*VehicleGunnyResult, error) {
	f, err := filterFor(warehouseID, camID, date)
	if err != nil {
		return nil, err
	}

	var (
		pairs  []model.PlateChunk
		totals []model.VehicleActionTotal
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		if pairs, err = s.repo.VehicleChunks(gctx, f); err != nil {
			return fmt.Errorf("vehicle chunks: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if totals, err = s.repo.GunnyByVehicle(gctx, f); err != nil {
			return fmt.Errorf("gunny by vehicle: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	res := &VehicleGunnyResult{
		Status:      StatusSuccess,
		WarehouseID: warehouseID,
		CamID:       camID,
		Date:        date,
		Vehicles:    []VehicleGunnyCount{},
	}
	if len(pairs) == 0 {
		res.Message = "No vehicles found for the given criteria"
		return res, nil
	}

	index := make(map[string]int)
	for _, p := range pairs {
		i, ok := index[p.NumberPlate]
		if !ok {
			i = len(res.Vehicles)
			index[p.NumberPlate] = i
			res.Vehicles = append(res.Vehicles, VehicleGunnyCount{
				NumberPlate:     p.NumberPlate,
				ActionBreakdown: []ActionBreakdown{},
			})
		}
		res.Vehicles[i].ChunkIDs = append(res.Vehicles[i].ChunkIDs, p.ChunkID)
	}
	for _, t := range totals {
		i, ok := index[t.NumberPlate]
		if !ok {
			continue
		}
		v := &res.Vehicles[i]
		v.ActionBreakdown = append(v.ActionBreakdown, ActionBreakdown{
			Action:          t.Action,
			TotalCount:      t.TotalCount,
			NumberOfEntries: t.Entries,
			FirstEntryTime:  t.FirstEntry,
			LastEntryTime:   t.LastEntry,
		})
		v.TotalBagsAllActions += t.TotalCount
		res.GrandTotalBags += t.TotalCount
	}
	res.TotalVehicles = len(res.Vehicles)
	return res, nil
}
