package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddProduct_Success(t *testing.T) {
	l := newTestLedger(t)
	registerTestFarm(t, l)

	require.NoError(t, l.AddProduct(testWriter, testProductInput()))
	assert.Equal(t, uint64(1), l.TotalProducts())

	evt := lastEvent(t, l)
	assert.Equal(t, EventProductAdded, evt.Type)
	assert.Equal(t, "PROD001", evt.Key)
}

func TestAddProduct_NewProductIsActive(t *testing.T) {
	l := newTestLedger(t)
	addTestProduct(t, l)

	product, err := l.GetProduct("PROD001")
	require.NoError(t, err)
	assert.Equal(t, StatusActive, product.Status)
	assert.Equal(t, CertOrganic, product.CertificationLevel)
}

func TestAddProduct_MissingFarmNotFound(t *testing.T) {
	l := newTestLedger(t)

	// Farm chưa đăng ký: không tạo sản phẩm, counter giữ nguyên
	err := l.AddProduct(testWriter, testProductInput())
	require.Error(t, err)
	assert.True(t, IsKind(err, KindNotFound))
	assert.EqualError(t, err, "NotFound: Farm not found")
	assert.Equal(t, uint64(0), l.TotalProducts())
}

func TestAddProduct_DuplicateCodeConflict(t *testing.T) {
	l := newTestLedger(t)
	addTestProduct(t, l)

	in := testProductInput()
	in.Name = "San Pham Khac"
	err := l.AddProduct(testWriter, in)
	require.Error(t, err)
	assert.True(t, IsKind(err, KindConflict))

	product, err := l.GetProduct("PROD001")
	require.NoError(t, err)
	assert.Equal(t, "Rau Cai Xanh Huu Co", product.Name)
	assert.Equal(t, uint64(1), l.TotalProducts())
}

func TestAddProduct_EmptyCodeRejected(t *testing.T) {
	l := newTestLedger(t)
	registerTestFarm(t, l)

	in := testProductInput()
	in.ProductCode = ""
	err := l.AddProduct(testWriter, in)
	require.Error(t, err)
	assert.True(t, IsKind(err, KindValidation))
	assert.EqualError(t, err, "Validation: Empty productCode")
}

func TestAddProduct_UnauthorizedRejected(t *testing.T) {
	l := newTestLedger(t)
	registerTestFarm(t, l)

	err := l.AddProduct(testOther, testProductInput())
	require.Error(t, err)
	assert.True(t, IsKind(err, KindAccessControl))
	assert.Equal(t, uint64(0), l.TotalProducts())
}

func TestUpdateProduct_MutatesAllowedFields(t *testing.T) {
	l := newTestLedger(t)
	addTestProduct(t, l)

	require.NoError(t, l.UpdateProduct(testWriter, "PROD001", ProductUpdate{
		Name:          "Rau Cai Xanh Cao Cap",
		Quantity:      "600kg",
		Price:         "50,000 VND/kg",
		Description:   "Mo ta cap nhat",
		Image:         "https://example.com/raucai-v2.jpg",
		BatchCode:     "BATCH20241215",
		Certification: "VietGAP",
	}))

	product, err := l.GetProduct("PROD001")
	require.NoError(t, err)
	assert.Equal(t, "Rau Cai Xanh Cao Cap", product.Name)
	assert.Equal(t, "600kg", product.Quantity)
	// Code và farm tham chiếu là bất biến
	assert.Equal(t, "PROD001", product.ProductCode)
	assert.Equal(t, "FARM001", product.FarmCode)

	assert.Equal(t, EventProductUpdated, lastEvent(t, l).Type)
}

func TestUpdateProduct_NotFound(t *testing.T) {
	l := newTestLedger(t)

	err := l.UpdateProduct(testWriter, "NONEXISTENT", ProductUpdate{Name: "X"})
	require.Error(t, err)
	assert.True(t, IsKind(err, KindNotFound))
	assert.EqualError(t, err, "NotFound: Product not found")
}

func TestDeactivateProduct_EmitsStatusChange(t *testing.T) {
	l := newTestLedger(t)
	addTestProduct(t, l)

	require.NoError(t, l.DeactivateProduct(testWriter, "PROD001"))

	product, err := l.GetProduct("PROD001")
	require.NoError(t, err)
	assert.Equal(t, StatusInactive, product.Status)

	evt := lastEvent(t, l)
	assert.Equal(t, EventProductStatusChanged, evt.Type)
	change, ok := evt.Payload.(ProductStatusChange)
	require.True(t, ok)
	assert.Equal(t, StatusActive, change.OldStatus)
	assert.Equal(t, StatusInactive, change.NewStatus)
}

func TestDeactivateProduct_Idempotent(t *testing.T) {
	l := newTestLedger(t)
	addTestProduct(t, l)

	require.NoError(t, l.DeactivateProduct(testWriter, "PROD001"))
	eventsAfterFirst := len(l.Events())

	require.NoError(t, l.DeactivateProduct(testWriter, "PROD001"))
	assert.Len(t, l.Events(), eventsAfterFirst)
}

func TestSetProductStatus_FullLifecycle(t *testing.T) {
	l := newTestLedger(t)
	addTestProduct(t, l)

	for _, status := range []ProductStatus{
		StatusPendingVerification, StatusRecalled, StatusActive,
	} {
		require.NoError(t, l.SetProductStatus(testWriter, "PROD001", status))
		product, err := l.GetProduct("PROD001")
		require.NoError(t, err)
		assert.Equal(t, status, product.Status)
	}
}

func TestSetProductStatus_InvalidValueRejected(t *testing.T) {
	l := newTestLedger(t)
	addTestProduct(t, l)

	err := l.SetProductStatus(testWriter, "PROD001", ProductStatus(99))
	require.Error(t, err)
	assert.True(t, IsKind(err, KindValidation))
}

func TestGetProduct_NotFound(t *testing.T) {
	l := newTestLedger(t)

	_, err := l.GetProduct("NONEXISTENT")
	require.Error(t, err)
	assert.True(t, IsKind(err, KindNotFound))
}

func TestGetProductsByFarm(t *testing.T) {
	l := newTestLedger(t)
	addTestProduct(t, l)

	second := testProductInput()
	second.ProductCode = "PROD002"
	require.NoError(t, l.AddProduct(testWriter, second))

	products := l.GetProductsByFarm("FARM001")
	require.Len(t, products, 2)
	assert.Equal(t, "PROD001", products[0].ProductCode)
	assert.Equal(t, "PROD002", products[1].ProductCode)

	assert.Empty(t, l.GetProductsByFarm("NONEXISTENT"))
}

func TestGetAllProducts(t *testing.T) {
	l := newTestLedger(t)
	addTestProduct(t, l)

	products := l.GetAllProducts()
	require.Len(t, products, 1)
	assert.Equal(t, "PROD001", products[0].ProductCode)
}
