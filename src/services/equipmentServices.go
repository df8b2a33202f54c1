package services

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/fabtrack/fabtrack-backend/src/models"
	excelize "github.com/xuri/excelize/v2"
)

// Cache entry
type cacheEntry struct {
	data      interface{}
	expiresAt time.Time
}

type ImportResult struct {
	Imported int
	Errors   []string
}

// EquipmentService is plain CRUD over the equipment catalog. Reads go
// through a short-lived in-process cache that mutations invalidate;
// every admin mutation appends an audit log row.
type EquipmentService struct {
	store Store
	cache map[string]*cacheEntry
	mutex sync.RWMutex
	now   func() time.Time
}

// NewEquipmentService creates a new instance of EquipmentService.
func NewEquipmentService(store Store) *EquipmentService {
	return &EquipmentService{
		store: store,
		cache: make(map[string]*cacheEntry),
		now:   time.Now,
	}
}

func (s *EquipmentService) setCache(key string, data interface{}, duration time.Duration) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.cache[key] = &cacheEntry{
		data:      data,
		expiresAt: s.now().Add(duration),
	}
}

func (s *EquipmentService) getCache(key string) (interface{}, bool) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	entry, exists := s.cache[key]
	if !exists || s.now().After(entry.expiresAt) {
		return nil, false
	}
	return entry.data, true
}

func (s *EquipmentService) invalidateCache() {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	for key := range s.cache {
		delete(s.cache, key)
	}
}

// AddEquipment creates a catalog entry and logs the creation.
func (s *EquipmentService) AddEquipment(name string, actorID int) (*models.EquipmentModel, error) {
	equipment := &models.EquipmentModel{Name: name}

	err := s.store.Transact(func(tx Store) error {
		if err := tx.CreateEquipment(equipment); err != nil {
			return err
		}
		return tx.CreateAuditLog(&models.AuditLogModel{
			UserId:    actorID,
			Action:    models.ActionCreate,
			Details:   fmt.Sprintf("Added equipment '%s' (#%d)", equipment.Name, equipment.Id),
			Timestamp: s.now(),
		})
	})
	if err != nil {
		return nil, err
	}

	s.invalidateCache()
	return equipment, nil
}

// UpdateEquipment renames an existing catalog entry.
func (s *EquipmentService) UpdateEquipment(id int, name string, actorID int) (*models.EquipmentModel, error) {
	equipment, err := s.store.FindEquipmentByID(id)
	if err != nil {
		return nil, err
	}
	if equipment == nil {
		return nil, fmt.Errorf("%w: equipment %d", ErrNotFound, id)
	}

	equipment.Name = name
	err = s.store.Transact(func(tx Store) error {
		if err := tx.SaveEquipment(equipment); err != nil {
			return err
		}
		return tx.CreateAuditLog(&models.AuditLogModel{
			UserId:    actorID,
			Action:    models.ActionUpdate,
			Details:   fmt.Sprintf("Updated equipment #%d to '%s'", id, name),
			Timestamp: s.now(),
		})
	})
	if err != nil {
		return nil, err
	}

	s.invalidateCache()
	return equipment, nil
}

// DeleteEquipment removes a catalog entry.
func (s *EquipmentService) DeleteEquipment(id int, actorID int) error {
	equipment, err := s.store.FindEquipmentByID(id)
	if err != nil {
		return err
	}
	if equipment == nil {
		return fmt.Errorf("%w: equipment %d", ErrNotFound, id)
	}

	err = s.store.Transact(func(tx Store) error {
		if err := tx.DeleteEquipment(id); err != nil {
			return err
		}
		return tx.CreateAuditLog(&models.AuditLogModel{
			UserId:    actorID,
			Action:    models.ActionDelete,
			Details:   fmt.Sprintf("Deleted equipment '%s' (#%d)", equipment.Name, id),
			Timestamp: s.now(),
		})
	})
	if err != nil {
		return err
	}

	s.invalidateCache()
	return nil
}

// GetAllEquipment retrieves the full catalog, cached for five minutes.
func (s *EquipmentService) GetAllEquipment() ([]models.EquipmentModel, error) {
	if cached, found := s.getCache("all_equipment"); found {
		return cached.([]models.EquipmentModel), nil
	}

	equipment, err := s.store.FindAllEquipment()
	if err != nil {
		return nil, err
	}

	s.setCache("all_equipment", equipment, 5*time.Minute)
	return equipment, nil
}

// GetEquipmentById retrieves one catalog entry by its ID.
func (s *EquipmentService) GetEquipmentById(id int) (*models.EquipmentModel, error) {
	cacheKey := fmt.Sprintf("equipment_%d", id)
	if cached, found := s.getCache(cacheKey); found {
		return cached.(*models.EquipmentModel), nil
	}

	equipment, err := s.store.FindEquipmentByID(id)
	if err != nil {
		return nil, err
	}
	if equipment == nil {
		return nil, fmt.Errorf("%w: equipment %d", ErrNotFound, id)
	}

	s.setCache(cacheKey, equipment, 5*time.Minute)
	return equipment, nil
}

// ImportEquipmentFromExcel reads catalog rows from the first sheet of
// an Excel workbook (name, description, serial number). Rows that
// cannot be imported are reported, not fatal.
func (s *EquipmentService) ImportEquipmentFromExcel(r io.Reader, actorID int) (*ImportResult, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("invalid excel file: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("could not read sheet %s: %w", sheet, err)
	}

	result := &ImportResult{Imported: 0, Errors: []string{}}

	for i, row := range rows {
		// Header row and empty rows are skipped.
		if i == 0 || len(row) == 0 || strings.TrimSpace(row[0]) == "" {
			continue
		}

		equipment := models.EquipmentModel{Name: strings.TrimSpace(row[0])}
		if len(row) > 1 {
			if desc := strings.TrimSpace(row[1]); desc != "" {
				equipment.Description = &desc
			}
		}
		if len(row) > 2 {
			if serial := strings.TrimSpace(row[2]); serial != "" {
				equipment.SerialNumber = &serial
			}
		}

		if err := s.store.CreateEquipment(&equipment); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("row %d: %v", i+1, err))
			continue
		}
		result.Imported++
	}

	if result.Imported > 0 {
		if err := s.store.CreateAuditLog(&models.AuditLogModel{
			UserId:    actorID,
			Action:    models.ActionCreate,
			Details:   fmt.Sprintf("Imported %d equipment entries from Excel", result.Imported),
			Timestamp: s.now(),
		}); err != nil {
			return nil, err
		}
		s.invalidateCache()
	}

	return result, nil
}

// ExportEquipmentToExcel writes the catalog to an Excel workbook.
func (s *EquipmentService) ExportEquipmentToExcel(w io.Writer) error {
	equipment, err := s.store.FindAllEquipment()
	if err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	_ = f.SetSheetRow(sheet, "A1", &[]string{"Name", "Description", "Serial Number"})

	for i, e := range equipment {
		cell := fmt.Sprintf("A%d", i+2)
		row := []string{e.Name, "", ""}
		if e.Description != nil {
			row[1] = *e.Description
		}
		if e.SerialNumber != nil {
			row[2] = *e.SerialNumber
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}

	return f.Write(w)
}
