package selection

import (
	"testing"

	"meliyah/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func goldPackage() models.Package {
	return models.Package{
		ID:   "gold",
		Name: "Paket Gold",
		Services: []models.Service{
			{ID: "1", Name: "Haarschnitt", Price: 80},
			{ID: "2", Name: "Färben", Price: 100},
		},
		Price: 180,
	}
}

func sarah() models.Employee {
	return models.Employee{
		ID:   "1",
		Name: "Sarah Weber",
		Availability: models.Availability{
			"Montag": {
				{Time: "09:00", Available: true},
				{Time: "10:00", Available: true},
				{Time: "11:00", Available: false},
				{Time: "14:00", Available: true},
				{Time: "15:00", Available: true},
			},
		},
	}
}

func shampoo() models.Product {
	return models.Product{ID: "p1", Name: "Cantu Shampoo", Price: 12.90}
}

func conditioner() models.Product {
	return models.Product{ID: "p2", Name: "Cantu Conditioner", Price: 13.90}
}

func TestNewSelectionIsEmpty(t *testing.T) {
	sel := NewSelection("s1")
	assert.Equal(t, "s1", sel.SessionID)
	assert.Nil(t, sel.SelectedPackage)
	assert.Nil(t, sel.SelectedEmployee)
	assert.Empty(t, sel.SelectedProducts)
	assert.Equal(t, StageEmpty, CurrentStage(sel))
}

func TestCurrentStageProgression(t *testing.T) {
	sel := NewSelection("s1")

	SelectPackage(sel, goldPackage())
	assert.Equal(t, StagePackageChosen, CurrentStage(sel))

	SelectEmployee(sel, sarah())
	assert.Equal(t, StageEmployeeChosen, CurrentStage(sel))

	SelectDate(sel, "2026-09-07")
	assert.Equal(t, StageEmployeeChosen, CurrentStage(sel), "date alone does not finish the stage")

	require.NoError(t, SelectTime(sel, "09:00"))
	assert.Equal(t, StageTimeChosen, CurrentStage(sel))
}

func TestSelectPackageKeepsOtherFields(t *testing.T) {
	sel := NewSelection("s1")
	SelectEmployee(sel, sarah())
	SelectDate(sel, "2026-09-07")
	require.NoError(t, SelectTime(sel, "10:00"))

	SelectPackage(sel, goldPackage())

	assert.NotNil(t, sel.SelectedEmployee)
	assert.Equal(t, "2026-09-07", sel.SelectedDate)
	assert.Equal(t, "10:00", sel.SelectedTime)
}

func TestSelectTimeRequiresEmployeeAndDate(t *testing.T) {
	sel := NewSelection("s1")

	err := SelectTime(sel, "09:00")
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "time", verr.Field)

	SelectEmployee(sel, sarah())
	err = SelectTime(sel, "09:00")
	require.ErrorAs(t, err, &verr)
	assert.Empty(t, sel.SelectedTime)
}

func TestSelectTimeRejectsUnavailableSlot(t *testing.T) {
	sel := NewSelection("s1")
	SelectEmployee(sel, sarah())
	SelectDate(sel, "2026-09-07") // a Monday; 11:00 is blocked

	err := SelectTime(sel, "11:00")
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "time", verr.Field)
	assert.Empty(t, sel.SelectedTime, "rejected transition must not change state")

	require.NoError(t, SelectTime(sel, "14:00"))
	assert.Equal(t, "14:00", sel.SelectedTime)
}

func TestSelectTimeEmptyClearsChoice(t *testing.T) {
	sel := NewSelection("s1")
	SelectEmployee(sel, sarah())
	SelectDate(sel, "2026-09-07")
	require.NoError(t, SelectTime(sel, "09:00"))

	require.NoError(t, SelectTime(sel, ""))
	assert.Empty(t, sel.SelectedTime)
}

func TestAddProductAllowsDuplicateLines(t *testing.T) {
	sel := NewSelection("s1")
	AddProduct(sel, shampoo())
	AddProduct(sel, shampoo())
	AddProduct(sel, conditioner())

	require.Len(t, sel.SelectedProducts, 3)
	assert.InDelta(t, 12.90+12.90+13.90, CartSubtotal(sel), 1e-9)
}

func TestRemoveProductDropsAllMatchingLines(t *testing.T) {
	sel := NewSelection("s1")
	AddProduct(sel, shampoo())
	AddProduct(sel, conditioner())
	AddProduct(sel, shampoo())

	RemoveProduct(sel, "p1")

	require.Len(t, sel.SelectedProducts, 1)
	assert.Equal(t, "p2", sel.SelectedProducts[0].ID)
}

func TestRemoveProductUnknownIDIsNoop(t *testing.T) {
	sel := NewSelection("s1")
	AddProduct(sel, shampoo())

	RemoveProduct(sel, "missing")
	assert.Len(t, sel.SelectedProducts, 1)
}

func TestApplyCoupon(t *testing.T) {
	sel := NewSelection("s1")
	AddProduct(sel, shampoo())

	require.NoError(t, ApplyCoupon(sel, "welcome10"), "codes are case-insensitive")
	assert.InDelta(t, 0.10, sel.DiscountRate, 1e-9)
	assert.InDelta(t, 12.90*0.9, CartTotal(sel), 1e-9)

	err := ApplyCoupon(sel, "SUMMER20")
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.InDelta(t, 0.10, sel.DiscountRate, 1e-9, "invalid code keeps the prior rate")
}

func TestCouponNeverDiscountsPackage(t *testing.T) {
	sel := NewSelection("s1")
	SelectPackage(sel, goldPackage())
	AddProduct(sel, shampoo())
	require.NoError(t, ApplyCoupon(sel, "WELCOME10"))

	assert.InDelta(t, 180, PackageTotal(sel), 1e-9)
	assert.InDelta(t, 12.90*0.9, CartTotal(sel), 1e-9)
}

func TestResetAfterCheckoutKeepsCart(t *testing.T) {
	sel := NewSelection("s1")
	SelectPackage(sel, goldPackage())
	SelectEmployee(sel, sarah())
	SelectDate(sel, "2026-09-07")
	require.NoError(t, SelectTime(sel, "09:00"))
	AddProduct(sel, shampoo())

	ResetAfterCheckout(sel)

	assert.Nil(t, sel.SelectedPackage)
	assert.Nil(t, sel.SelectedEmployee)
	assert.Empty(t, sel.SelectedDate)
	assert.Empty(t, sel.SelectedTime)
	assert.Len(t, sel.SelectedProducts, 1, "cart survives an appointment checkout")
}

func TestClearCartKeepsAppointment(t *testing.T) {
	sel := NewSelection("s1")
	SelectPackage(sel, goldPackage())
	AddProduct(sel, shampoo())
	require.NoError(t, ApplyCoupon(sel, "WELCOME10"))

	ClearCart(sel)

	assert.Empty(t, sel.SelectedProducts)
	assert.Zero(t, sel.DiscountRate)
	assert.NotNil(t, sel.SelectedPackage, "appointment choices survive a cart checkout")
}

func TestTotalPriceIsPackagePlusCart(t *testing.T) {
	sel := NewSelection("s1")
	assert.Zero(t, TotalPrice(sel))

	SelectPackage(sel, goldPackage())
	assert.InDelta(t, 180, TotalPrice(sel), 1e-9, "package total sums the included services")

	AddProduct(sel, shampoo())
	AddProduct(sel, conditioner())
	assert.InDelta(t, 180+12.90+13.90, TotalPrice(sel), 1e-9)

	RemoveProduct(sel, "p2")
	assert.InDelta(t, 180+12.90, TotalPrice(sel), 1e-9, "total tracks every cart mutation")
}
