package selection

import (
	"errors"
	"testing"

	"meliyah/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeCatalog serves fixtures from memory and can be switched to fail.
type fakeCatalog struct {
	packages  map[string]models.Package
	employees map[string]models.Employee
	products  map[string]models.Product
	err       error
}

func newFakeCatalog() *fakeCatalog {
	return &fakeCatalog{
		packages:  map[string]models.Package{"gold": goldPackage()},
		employees: map[string]models.Employee{"1": sarah()},
		products:  map[string]models.Product{"p1": shampoo(), "p2": conditioner()},
	}
}

func (f *fakeCatalog) ListServices() ([]models.Service, error) { return nil, f.err }
func (f *fakeCatalog) GetService(id string) (*models.Service, error) {
	return nil, errors.New("not found")
}

func (f *fakeCatalog) ListPackages() ([]models.Package, error) { return nil, f.err }
func (f *fakeCatalog) GetPackage(id string) (*models.Package, error) {
	if f.err != nil {
		return nil, f.err
	}
	pkg, ok := f.packages[id]
	if !ok {
		return nil, errors.New("package not found")
	}
	return &pkg, nil
}

func (f *fakeCatalog) ListEmployees() ([]models.Employee, error) { return nil, f.err }
func (f *fakeCatalog) GetEmployee(id string) (*models.Employee, error) {
	if f.err != nil {
		return nil, f.err
	}
	emp, ok := f.employees[id]
	if !ok {
		return nil, errors.New("employee not found")
	}
	return &emp, nil
}

func (f *fakeCatalog) ListProducts() ([]models.Product, error) { return nil, f.err }
func (f *fakeCatalog) GetProduct(id string) (*models.Product, error) {
	if f.err != nil {
		return nil, f.err
	}
	p, ok := f.products[id]
	if !ok {
		return nil, errors.New("product not found")
	}
	return &p, nil
}

func (f *fakeCatalog) GetSalonInfo() (*models.SalonInfo, error) { return nil, f.err }

func newTestService() (*DefaultSelectionService, *fakeCatalog) {
	catalog := newFakeCatalog()
	svc := &DefaultSelectionService{
		Catalog: catalog,
		Store:   NewInMemorySessionStore(),
		Logger:  zap.NewNop(),
	}
	return svc, catalog
}

func TestStartAndGetSession(t *testing.T) {
	svc, _ := newTestService()

	sel, err := svc.StartSession()
	require.NoError(t, err)
	require.NotEmpty(t, sel.SessionID)

	got, err := svc.GetSession(sel.SessionID)
	require.NoError(t, err)
	assert.Equal(t, sel.SessionID, got.SessionID)
	assert.Equal(t, StageEmpty, CurrentStage(got))
}

func TestGetSessionUnknownID(t *testing.T) {
	svc, _ := newTestService()
	_, err := svc.GetSession("nope")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestFullSelectionFlow(t *testing.T) {
	svc, _ := newTestService()
	sel, err := svc.StartSession()
	require.NoError(t, err)
	id := sel.SessionID

	_, err = svc.SelectPackage(id, "gold")
	require.NoError(t, err)
	_, err = svc.SelectEmployee(id, "1")
	require.NoError(t, err)
	_, err = svc.SelectDate(id, "2026-09-07")
	require.NoError(t, err)
	sel, err = svc.SelectTime(id, "09:00")
	require.NoError(t, err)

	assert.Equal(t, StageTimeChosen, CurrentStage(sel))
	assert.Equal(t, "Paket Gold", sel.SelectedPackage.Name)
	assert.Equal(t, "Sarah Weber", sel.SelectedEmployee.Name)

	// The stored session reflects the transitions.
	stored, err := svc.GetSession(id)
	require.NoError(t, err)
	assert.Equal(t, "09:00", stored.SelectedTime)
}

func TestSelectDateClearsStaleTime(t *testing.T) {
	svc, _ := newTestService()
	sel, err := svc.StartSession()
	require.NoError(t, err)
	id := sel.SessionID

	_, err = svc.SelectEmployee(id, "1")
	require.NoError(t, err)
	_, err = svc.SelectDate(id, "2026-09-07")
	require.NoError(t, err)
	_, err = svc.SelectTime(id, "09:00")
	require.NoError(t, err)

	// Sunday: Sarah has no slots, the chosen time cannot survive.
	sel, err = svc.SelectDate(id, "2026-09-13")
	require.NoError(t, err)
	assert.Equal(t, "2026-09-13", sel.SelectedDate)
	assert.Empty(t, sel.SelectedTime)
}

func TestSelectDateKeepsStillValidTime(t *testing.T) {
	svc, _ := newTestService()
	sel, err := svc.StartSession()
	require.NoError(t, err)
	id := sel.SessionID

	_, err = svc.SelectEmployee(id, "1")
	require.NoError(t, err)
	_, err = svc.SelectDate(id, "2026-09-07")
	require.NoError(t, err)
	_, err = svc.SelectTime(id, "09:00")
	require.NoError(t, err)

	// The following Monday offers the same slots.
	sel, err = svc.SelectDate(id, "2026-09-14")
	require.NoError(t, err)
	assert.Equal(t, "09:00", sel.SelectedTime)
}

func TestSelectDateRejectsBadFormat(t *testing.T) {
	svc, _ := newTestService()
	sel, err := svc.StartSession()
	require.NoError(t, err)

	_, err = svc.SelectDate(sel.SessionID, "07.09.2026")
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "date", verr.Field)
}

func TestCatalogFailureIsWrapped(t *testing.T) {
	svc, catalog := newTestService()
	sel, err := svc.StartSession()
	require.NoError(t, err)

	catalog.err = errors.New("mongo down")
	_, err = svc.SelectPackage(sel.SessionID, "gold")

	var cerr *CatalogUnavailableError
	require.ErrorAs(t, err, &cerr)
	assert.ErrorContains(t, err, "mongo down")

	// The stored session is untouched.
	stored, err := svc.GetSession(sel.SessionID)
	require.NoError(t, err)
	assert.Nil(t, stored.SelectedPackage)
}

func TestRejectedTransitionLeavesStoreUntouched(t *testing.T) {
	svc, _ := newTestService()
	sel, err := svc.StartSession()
	require.NoError(t, err)
	id := sel.SessionID

	_, err = svc.SelectEmployee(id, "1")
	require.NoError(t, err)
	_, err = svc.SelectDate(id, "2026-09-07")
	require.NoError(t, err)

	_, err = svc.SelectTime(id, "11:00")
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)

	stored, err := svc.GetSession(id)
	require.NoError(t, err)
	assert.Empty(t, stored.SelectedTime)
}

func TestCartRoundTrip(t *testing.T) {
	svc, _ := newTestService()
	sel, err := svc.StartSession()
	require.NoError(t, err)
	id := sel.SessionID

	_, err = svc.AddProduct(id, "p1")
	require.NoError(t, err)
	_, err = svc.AddProduct(id, "p1")
	require.NoError(t, err)
	sel, err = svc.AddProduct(id, "p2")
	require.NoError(t, err)
	require.Len(t, sel.SelectedProducts, 3)

	sel, err = svc.RemoveProduct(id, "p1")
	require.NoError(t, err)
	require.Len(t, sel.SelectedProducts, 1)

	sel, err = svc.ApplyCoupon(id, "WELCOME10")
	require.NoError(t, err)
	assert.InDelta(t, 0.10, sel.DiscountRate, 1e-9)

	sel, err = svc.ClearCart(id)
	require.NoError(t, err)
	assert.Empty(t, sel.SelectedProducts)
	assert.Zero(t, sel.DiscountRate)
}

func TestCancelSession(t *testing.T) {
	svc, _ := newTestService()
	sel, err := svc.StartSession()
	require.NoError(t, err)

	require.NoError(t, svc.CancelSession(sel.SessionID))

	_, err = svc.GetSession(sel.SessionID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}
