// File: services/selection/service.go
package selection

import (
	"context"
	"time"

	catalogRepo "meliyah/database/repository/catalog"
	"meliyah/models"
	"meliyah/services/availability"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SelectionService manages the stateful booking session: every transition
// loads the Selection from the store, applies a pure transition and saves
// the result. Catalog IDs arriving from the client are resolved through the
// catalog repository so the session always carries full records.
type SelectionService interface {
	StartSession() (*models.Selection, error)
	GetSession(sessionID string) (*models.Selection, error)
	SelectPackage(sessionID, packageID string) (*models.Selection, error)
	SelectEmployee(sessionID, employeeID string) (*models.Selection, error)
	SelectDate(sessionID, date string) (*models.Selection, error)
	SelectTime(sessionID, timeLabel string) (*models.Selection, error)
	AddProduct(sessionID, productID string) (*models.Selection, error)
	RemoveProduct(sessionID, productID string) (*models.Selection, error)
	ApplyCoupon(sessionID, code string) (*models.Selection, error)
	ResetAfterCheckout(sessionID string) (*models.Selection, error)
	ClearCart(sessionID string) (*models.Selection, error)
	CancelSession(sessionID string) error
}

// DefaultSelectionService implements SelectionService.
type DefaultSelectionService struct {
	Catalog catalogRepo.CatalogRepository
	Store   SessionStore
	Logger  *zap.Logger
}

func (s *DefaultSelectionService) newContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 5*time.Second)
}

// StartSession creates a fresh empty Selection and stores it.
func (s *DefaultSelectionService) StartSession() (*models.Selection, error) {
	ctx, cancel := s.newContext()
	defer cancel()

	sel := NewSelection(uuid.New().String())
	if err := s.Store.Save(ctx, sel); err != nil {
		return nil, err
	}
	s.Logger.Debug("booking session started", zap.String("sessionID", sel.SessionID))
	return sel, nil
}

// GetSession returns the current Selection.
func (s *DefaultSelectionService) GetSession(sessionID string) (*models.Selection, error) {
	ctx, cancel := s.newContext()
	defer cancel()
	return s.Store.Get(ctx, sessionID)
}

// apply loads the session, runs the transition and saves on success. A
// transition error leaves the stored Selection untouched.
func (s *DefaultSelectionService) apply(sessionID string, transition func(*models.Selection) error) (*models.Selection, error) {
	ctx, cancel := s.newContext()
	defer cancel()

	sel, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := transition(sel); err != nil {
		return nil, err
	}
	if err := s.Store.Save(ctx, sel); err != nil {
		return nil, err
	}
	return sel, nil
}

func (s *DefaultSelectionService) SelectPackage(sessionID, packageID string) (*models.Selection, error) {
	pkg, err := s.Catalog.GetPackage(packageID)
	if err != nil {
		return nil, &CatalogUnavailableError{Err: err}
	}
	return s.apply(sessionID, func(sel *models.Selection) error {
		SelectPackage(sel, *pkg)
		return nil
	})
}

func (s *DefaultSelectionService) SelectEmployee(sessionID, employeeID string) (*models.Selection, error) {
	employee, err := s.Catalog.GetEmployee(employeeID)
	if err != nil {
		return nil, &CatalogUnavailableError{Err: err}
	}
	return s.apply(sessionID, func(sel *models.Selection) error {
		SelectEmployee(sel, *employee)
		return nil
	})
}

// SelectDate stores the new date and, acting as the caller the state machine
// contract puts in charge of invalidation, clears a previously chosen time
// that is no longer available on the new date.
func (s *DefaultSelectionService) SelectDate(sessionID, date string) (*models.Selection, error) {
	weekday, err := availability.WeekdayLabel(date)
	if err != nil {
		return nil, NewValidationError("date", err.Error())
	}
	return s.apply(sessionID, func(sel *models.Selection) error {
		SelectDate(sel, date)
		if sel.SelectedTime != "" {
			stillFree := sel.SelectedEmployee != nil &&
				availability.SlotAvailable(*sel.SelectedEmployee, weekday, sel.SelectedTime)
			if !stillFree {
				s.Logger.Debug("clearing stale time after date change",
					zap.String("sessionID", sessionID), zap.String("time", sel.SelectedTime))
				return SelectTime(sel, "")
			}
		}
		return nil
	})
}

func (s *DefaultSelectionService) SelectTime(sessionID, timeLabel string) (*models.Selection, error) {
	return s.apply(sessionID, func(sel *models.Selection) error {
		return SelectTime(sel, timeLabel)
	})
}

func (s *DefaultSelectionService) AddProduct(sessionID, productID string) (*models.Selection, error) {
	product, err := s.Catalog.GetProduct(productID)
	if err != nil {
		return nil, &CatalogUnavailableError{Err: err}
	}
	return s.apply(sessionID, func(sel *models.Selection) error {
		AddProduct(sel, *product)
		return nil
	})
}

func (s *DefaultSelectionService) RemoveProduct(sessionID, productID string) (*models.Selection, error) {
	return s.apply(sessionID, func(sel *models.Selection) error {
		RemoveProduct(sel, productID)
		return nil
	})
}

func (s *DefaultSelectionService) ApplyCoupon(sessionID, code string) (*models.Selection, error) {
	return s.apply(sessionID, func(sel *models.Selection) error {
		return ApplyCoupon(sel, code)
	})
}

func (s *DefaultSelectionService) ResetAfterCheckout(sessionID string) (*models.Selection, error) {
	return s.apply(sessionID, func(sel *models.Selection) error {
		ResetAfterCheckout(sel)
		return nil
	})
}

func (s *DefaultSelectionService) ClearCart(sessionID string) (*models.Selection, error) {
	return s.apply(sessionID, func(sel *models.Selection) error {
		ClearCart(sel)
		return nil
	})
}

// CancelSession drops the session from the store.
func (s *DefaultSelectionService) CancelSession(sessionID string) error {
	ctx, cancel := s.newContext()
	defer cancel()
	return s.Store.Delete(ctx, sessionID)
}
