// server/internal/api/handlers/process_handler.go
package handlers

import (
	"net/http"

	"agri-traceability-api-server/internal/ledger"

	"github.com/gin-gonic/gin"
)

// ProcessHandler phục vụ năm loại bản ghi quy trình của một sản phẩm.
// Mỗi loại có ba endpoint: add (ghi đè), update (yêu cầu đã tồn tại), get.
type ProcessHandler struct {
	Ledger *ledger.Ledger
}

type FarmingProcessRequest struct {
	NameProcess  string `json:"nameProcess" binding:"required"`
	Source       string `json:"source"`
	PlantingDate string `json:"plantingDate"`
	SowingDate   string `json:"sowingDate"`
}

type MedicineRequest struct {
	NameMedicine      string `json:"nameMedicine" binding:"required"`
	Quantity          string `json:"quantity"`
	ApplicationDate   string `json:"applicationDate"`
	MedicineType      string `json:"medicineType"`
	ApplicationMethod string `json:"applicationMethod"`
}

type FertilizerRequest struct {
	NameFertilizer    string `json:"nameFertilizer" binding:"required"`
	Quantity          string `json:"quantity"`
	ApplicationDate   string `json:"applicationDate"`
	FertilizerType    string `json:"fertilizerType"`
	ApplicationMethod string `json:"applicationMethod"`
	ExpectedEffect    string `json:"expectedEffect"`
}

type HarvestRequest struct {
	HarvestDate       string `json:"harvestDate" binding:"required"`
	EstimatedQuantity string `json:"estimatedQuantity"`
	ActualQuantity    string `json:"actualQuantity"`
	Quality           string `json:"quality"`
	HarvestMethod     string `json:"harvestMethod"`
}

type DistributionRequest struct {
	DistributorName     string `json:"distributorName" binding:"required"`
	DistributionPartner string `json:"distributionPartner"`
	DistributionDate    string `json:"distributionDate"`
	TransportMethod     string `json:"transportMethod"`
	StorageConditions   string `json:"storageConditions"`
}

func (h *ProcessHandler) bindFarmingProcess(c *gin.Context) (ledger.FarmingProcess, bool) {
	var req FarmingProcessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return ledger.FarmingProcess{}, false
	}
	return ledger.FarmingProcess{
		ProductCode:  c.Param("code"),
		NameProcess:  req.NameProcess,
		Source:       req.Source,
		PlantingDate: req.PlantingDate,
		SowingDate:   req.SowingDate,
	}, true
}

// AddFarmingProcess ghi bản ghi canh tác cho sản phẩm (ghi đè nếu đã có).
func (h *ProcessHandler) AddFarmingProcess(c *gin.Context) {
	rec, ok := h.bindFarmingProcess(c)
	if !ok {
		return
	}
	if err := h.Ledger.AddFarmingProcess(callerID(c), rec); err != nil {
		respondLedgerError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"status": "success", "productCode": rec.ProductCode})
}

// UpdateFarmingProcess thay thế bản ghi canh tác đã tồn tại.
func (h *ProcessHandler) UpdateFarmingProcess(c *gin.Context) {
	rec, ok := h.bindFarmingProcess(c)
	if !ok {
		return
	}
	if err := h.Ledger.UpdateFarmingProcess(callerID(c), rec); err != nil {
		respondLedgerError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "productCode": rec.ProductCode})
}

// GetFarmingProcess trả về bản ghi canh tác của sản phẩm.
func (h *ProcessHandler) GetFarmingProcess(c *gin.Context) {
	rec, err := h.Ledger.GetFarmingProcess(c.Param("code"))
	if err != nil {
		respondLedgerError(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

func (h *ProcessHandler) bindMedicine(c *gin.Context) (ledger.Medicine, bool) {
	var req MedicineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return ledger.Medicine{}, false
	}
	return ledger.Medicine{
		ProductCode:       c.Param("code"),
		NameMedicine:      req.NameMedicine,
		Quantity:          req.Quantity,
		ApplicationDate:   req.ApplicationDate,
		MedicineType:      req.MedicineType,
		ApplicationMethod: req.ApplicationMethod,
	}, true
}

// AddMedicine ghi bản ghi sử dụng thuốc cho sản phẩm (ghi đè nếu đã có).
func (h *ProcessHandler) AddMedicine(c *gin.Context) {
	rec, ok := h.bindMedicine(c)
	if !ok {
		return
	}
	if err := h.Ledger.AddMedicine(callerID(c), rec); err != nil {
		respondLedgerError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"status": "success", "productCode": rec.ProductCode})
}

// UpdateMedicine thay thế bản ghi thuốc đã tồn tại.
func (h *ProcessHandler) UpdateMedicine(c *gin.Context) {
	rec, ok := h.bindMedicine(c)
	if !ok {
		return
	}
	if err := h.Ledger.UpdateMedicine(callerID(c), rec); err != nil {
		respondLedgerError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "productCode": rec.ProductCode})
}

// GetMedicine trả về bản ghi thuốc của sản phẩm.
func (h *ProcessHandler) GetMedicine(c *gin.Context) {
	rec, err := h.Ledger.GetMedicine(c.Param("code"))
	if err != nil {
		respondLedgerError(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

func (h *ProcessHandler) bindFertilizer(c *gin.Context) (ledger.Fertilizer, bool) {
	var req FertilizerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return ledger.Fertilizer{}, false
	}
	return ledger.Fertilizer{
		ProductCode:       c.Param("code"),
		NameFertilizer:    req.NameFertilizer,
		Quantity:          req.Quantity,
		ApplicationDate:   req.ApplicationDate,
		FertilizerType:    req.FertilizerType,
		ApplicationMethod: req.ApplicationMethod,
		ExpectedEffect:    req.ExpectedEffect,
	}, true
}

// AddFertilizer ghi bản ghi bón phân cho sản phẩm (ghi đè nếu đã có).
func (h *ProcessHandler) AddFertilizer(c *gin.Context) {
	rec, ok := h.bindFertilizer(c)
	if !ok {
		return
	}
	if err := h.Ledger.AddFertilizer(callerID(c), rec); err != nil {
		respondLedgerError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"status": "success", "productCode": rec.ProductCode})
}

// UpdateFertilizer thay thế bản ghi phân bón đã tồn tại.
func (h *ProcessHandler) UpdateFertilizer(c *gin.Context) {
	rec, ok := h.bindFertilizer(c)
	if !ok {
		return
	}
	if err := h.Ledger.UpdateFertilizer(callerID(c), rec); err != nil {
		respondLedgerError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "productCode": rec.ProductCode})
}

// GetFertilizer trả về bản ghi phân bón của sản phẩm.
func (h *ProcessHandler) GetFertilizer(c *gin.Context) {
	rec, err := h.Ledger.GetFertilizer(c.Param("code"))
	if err != nil {
		respondLedgerError(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

func (h *ProcessHandler) bindHarvest(c *gin.Context) (ledger.Harvest, bool) {
	var req HarvestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return ledger.Harvest{}, false
	}
	return ledger.Harvest{
		ProductCode:       c.Param("code"),
		HarvestDate:       req.HarvestDate,
		EstimatedQuantity: req.EstimatedQuantity,
		ActualQuantity:    req.ActualQuantity,
		Quality:           req.Quality,
		HarvestMethod:     req.HarvestMethod,
	}, true
}

// AddHarvest ghi bản ghi thu hoạch cho sản phẩm (ghi đè nếu đã có).
func (h *ProcessHandler) AddHarvest(c *gin.Context) {
	rec, ok := h.bindHarvest(c)
	if !ok {
		return
	}
	if err := h.Ledger.AddHarvest(callerID(c), rec); err != nil {
		respondLedgerError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"status": "success", "productCode": rec.ProductCode})
}

// UpdateHarvest thay thế bản ghi thu hoạch đã tồn tại.
func (h *ProcessHandler) UpdateHarvest(c *gin.Context) {
	rec, ok := h.bindHarvest(c)
	if !ok {
		return
	}
	if err := h.Ledger.UpdateHarvest(callerID(c), rec); err != nil {
		respondLedgerError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "productCode": rec.ProductCode})
}

// GetHarvest trả về bản ghi thu hoạch của sản phẩm.
func (h *ProcessHandler) GetHarvest(c *gin.Context) {
	rec, err := h.Ledger.GetHarvest(c.Param("code"))
	if err != nil {
		respondLedgerError(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

func (h *ProcessHandler) bindDistribution(c *gin.Context) (ledger.Distribution, bool) {
	var req DistributionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return ledger.Distribution{}, false
	}
	return ledger.Distribution{
		ProductCode:         c.Param("code"),
		DistributorName:     req.DistributorName,
		DistributionPartner: req.DistributionPartner,
		DistributionDate:    req.DistributionDate,
		TransportMethod:     req.TransportMethod,
		StorageConditions:   req.StorageConditions,
	}, true
}

// AddDistribution ghi bản ghi phân phối cho sản phẩm (ghi đè nếu đã có).
func (h *ProcessHandler) AddDistribution(c *gin.Context) {
	rec, ok := h.bindDistribution(c)
	if !ok {
		return
	}
	if err := h.Ledger.AddDistribution(callerID(c), rec); err != nil {
		respondLedgerError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"status": "success", "productCode": rec.ProductCode})
}

// UpdateDistribution thay thế bản ghi phân phối đã tồn tại.
func (h *ProcessHandler) UpdateDistribution(c *gin.Context) {
	rec, ok := h.bindDistribution(c)
	if !ok {
		return
	}
	if err := h.Ledger.UpdateDistribution(callerID(c), rec); err != nil {
		respondLedgerError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "productCode": rec.ProductCode})
}

// GetDistribution trả về bản ghi phân phối của sản phẩm.
func (h *ProcessHandler) GetDistribution(c *gin.Context) {
	rec, err := h.Ledger.GetDistribution(c.Param("code"))
	if err != nil {
		respondLedgerError(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}
