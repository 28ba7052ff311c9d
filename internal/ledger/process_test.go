package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFarmingProcess() FarmingProcess {
	return FarmingProcess{
		ProductCode:  "PROD001",
		NameProcess:  "Canh tac huu co",
		Source:       "Giong rau cai F1",
		PlantingDate: "2024-10-01",
		SowingDate:   "2024-09-25",
	}
}

func testMedicine() Medicine {
	return Medicine{
		ProductCode:       "PROD001",
		NameMedicine:      "Thuoc tru sau sinh hoc BT",
		Quantity:          "2 lit",
		ApplicationDate:   "2024-10-15",
		MedicineType:      "Sinh hoc",
		ApplicationMethod: "Phun suong",
	}
}

func testFertilizer() Fertilizer {
	return Fertilizer{
		ProductCode:       "PROD001",
		NameFertilizer:    "Phan huu co vi sinh",
		Quantity:          "50kg",
		ApplicationDate:   "2024-10-10",
		FertilizerType:    "Huu co",
		ApplicationMethod: "Bon goc",
		ExpectedEffect:    "Tang do phi nhieu cua dat",
	}
}

func testHarvest() Harvest {
	return Harvest{
		ProductCode:       "PROD001",
		HarvestDate:       "2024-11-20",
		EstimatedQuantity: "550kg",
		ActualQuantity:    "500kg",
		Quality:           "Loai A",
		HarvestMethod:     "Thu hoach thu cong",
	}
}

func testDistribution() Distribution {
	return Distribution{
		ProductCode:         "PROD001",
		DistributorName:     "Cong ty TNHH Phan Phoi Xanh",
		DistributionPartner: "Sieu thi CoopMart",
		DistributionDate:    "2024-11-22",
		TransportMethod:     "Xe tai lanh",
		StorageConditions:   "2-5 do C",
	}
}

func TestAddFarmingProcess_RoundTrip(t *testing.T) {
	l := newTestLedger(t)
	addTestProduct(t, l)

	rec := testFarmingProcess()
	require.NoError(t, l.AddFarmingProcess(testWriter, rec))

	got, err := l.GetFarmingProcess("PROD001")
	require.NoError(t, err)
	assert.Equal(t, rec, got)

	evt := lastEvent(t, l)
	assert.Equal(t, EventFarmingProcessAdded, evt.Type)
	assert.Equal(t, "PROD001", evt.Key)
}

func TestAddFarmingProcess_OverwritesExisting(t *testing.T) {
	l := newTestLedger(t)
	addTestProduct(t, l)

	first := testFarmingProcess()
	require.NoError(t, l.AddFarmingProcess(testWriter, first))

	// Add lần hai là ghi đè: mỗi sản phẩm chỉ giữ một bản ghi hiện hành
	second := testFarmingProcess()
	second.NameProcess = "Canh tac thuy canh"
	second.PlantingDate = "2024-10-05"
	require.NoError(t, l.AddFarmingProcess(testWriter, second))

	got, err := l.GetFarmingProcess("PROD001")
	require.NoError(t, err)
	assert.Equal(t, second, got)
}

func TestAddFarmingProcess_MissingProductNotFound(t *testing.T) {
	l := newTestLedger(t)

	err := l.AddFarmingProcess(testWriter, testFarmingProcess())
	require.Error(t, err)
	assert.True(t, IsKind(err, KindNotFound))
	assert.EqualError(t, err, "NotFound: Product not found")
}

func TestUpdateFarmingProcess_RequiresExistingRecord(t *testing.T) {
	l := newTestLedger(t)
	addTestProduct(t, l)

	// Update trước khi add: bản ghi chưa tồn tại
	err := l.UpdateFarmingProcess(testWriter, testFarmingProcess())
	require.Error(t, err)
	assert.True(t, IsKind(err, KindNotFound))
	assert.EqualError(t, err, "NotFound: Farming process not found")

	require.NoError(t, l.AddFarmingProcess(testWriter, testFarmingProcess()))

	upd := testFarmingProcess()
	upd.Source = "Giong rau cai F2"
	require.NoError(t, l.UpdateFarmingProcess(testWriter, upd))

	got, err := l.GetFarmingProcess("PROD001")
	require.NoError(t, err)
	assert.Equal(t, "Giong rau cai F2", got.Source)
	assert.Equal(t, EventFarmingProcessUpdated, lastEvent(t, l).Type)
}

func TestAddFarmingProcess_UnauthorizedRejected(t *testing.T) {
	l := newTestLedger(t)
	addTestProduct(t, l)

	err := l.AddFarmingProcess(testOther, testFarmingProcess())
	require.Error(t, err)
	assert.True(t, IsKind(err, KindAccessControl))
}

func TestMedicine_RoundTripAndOverwrite(t *testing.T) {
	l := newTestLedger(t)
	addTestProduct(t, l)

	rec := testMedicine()
	require.NoError(t, l.AddMedicine(testWriter, rec))
	got, err := l.GetMedicine("PROD001")
	require.NoError(t, err)
	assert.Equal(t, rec, got)

	rec.Quantity = "3 lit"
	require.NoError(t, l.AddMedicine(testWriter, rec))
	got, err = l.GetMedicine("PROD001")
	require.NoError(t, err)
	assert.Equal(t, "3 lit", got.Quantity)
}

func TestUpdateMedicine_RequiresExistingRecord(t *testing.T) {
	l := newTestLedger(t)
	addTestProduct(t, l)

	err := l.UpdateMedicine(testWriter, testMedicine())
	require.Error(t, err)
	assert.EqualError(t, err, "NotFound: Medicine record not found")

	require.NoError(t, l.AddMedicine(testWriter, testMedicine()))
	upd := testMedicine()
	upd.ApplicationMethod = "Tuoi goc"
	require.NoError(t, l.UpdateMedicine(testWriter, upd))

	got, err := l.GetMedicine("PROD001")
	require.NoError(t, err)
	assert.Equal(t, "Tuoi goc", got.ApplicationMethod)
}

func TestFertilizer_RoundTripAndUpdate(t *testing.T) {
	l := newTestLedger(t)
	addTestProduct(t, l)

	err := l.UpdateFertilizer(testWriter, testFertilizer())
	require.Error(t, err)
	assert.EqualError(t, err, "NotFound: Fertilizer record not found")

	rec := testFertilizer()
	require.NoError(t, l.AddFertilizer(testWriter, rec))
	got, err := l.GetFertilizer("PROD001")
	require.NoError(t, err)
	assert.Equal(t, rec, got)

	rec.ExpectedEffect = "Kich thich ra la"
	require.NoError(t, l.UpdateFertilizer(testWriter, rec))
	got, err = l.GetFertilizer("PROD001")
	require.NoError(t, err)
	assert.Equal(t, "Kich thich ra la", got.ExpectedEffect)
}

func TestHarvest_RoundTripAndUpdate(t *testing.T) {
	l := newTestLedger(t)
	addTestProduct(t, l)

	err := l.UpdateHarvest(testWriter, testHarvest())
	require.Error(t, err)
	assert.EqualError(t, err, "NotFound: Harvest record not found")

	rec := testHarvest()
	require.NoError(t, l.AddHarvest(testWriter, rec))
	got, err := l.GetHarvest("PROD001")
	require.NoError(t, err)
	assert.Equal(t, rec, got)

	rec.ActualQuantity = "520kg"
	require.NoError(t, l.UpdateHarvest(testWriter, rec))
	got, err = l.GetHarvest("PROD001")
	require.NoError(t, err)
	assert.Equal(t, "520kg", got.ActualQuantity)
	assert.Equal(t, EventHarvestUpdated, lastEvent(t, l).Type)
}

func TestDistribution_RoundTripAndUpdate(t *testing.T) {
	l := newTestLedger(t)
	addTestProduct(t, l)

	err := l.UpdateDistribution(testWriter, testDistribution())
	require.Error(t, err)
	assert.EqualError(t, err, "NotFound: Distribution record not found")

	rec := testDistribution()
	require.NoError(t, l.AddDistribution(testWriter, rec))
	got, err := l.GetDistribution("PROD001")
	require.NoError(t, err)
	assert.Equal(t, rec, got)

	rec.TransportMethod = "Xe tai thuong"
	require.NoError(t, l.UpdateDistribution(testWriter, rec))
	got, err = l.GetDistribution("PROD001")
	require.NoError(t, err)
	assert.Equal(t, "Xe tai thuong", got.TransportMethod)
}

func TestGetProcessRecords_MissingRecordNotFound(t *testing.T) {
	l := newTestLedger(t)
	addTestProduct(t, l)

	_, err := l.GetFarmingProcess("PROD001")
	assert.True(t, IsKind(err, KindNotFound))
	_, err = l.GetMedicine("PROD001")
	assert.True(t, IsKind(err, KindNotFound))
	_, err = l.GetFertilizer("PROD001")
	assert.True(t, IsKind(err, KindNotFound))
	_, err = l.GetHarvest("PROD001")
	assert.True(t, IsKind(err, KindNotFound))
	_, err = l.GetDistribution("PROD001")
	assert.True(t, IsKind(err, KindNotFound))
}

func TestProcessRecords_IndependentPerProduct(t *testing.T) {
	l := newTestLedger(t)
	addTestProduct(t, l)

	second := testProductInput()
	second.ProductCode = "PROD002"
	require.NoError(t, l.AddProduct(testWriter, second))

	require.NoError(t, l.AddHarvest(testWriter, testHarvest()))

	// Bản ghi của PROD001 không rò sang PROD002
	_, err := l.GetHarvest("PROD002")
	require.Error(t, err)
	assert.True(t, IsKind(err, KindNotFound))
}
