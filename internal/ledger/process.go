package ledger

// Process record store: năm kho độc lập (canh tác, thuốc, phân bón, thu
// hoạch, phân phối), mỗi kho giữ đúng MỘT bản ghi hiện hành cho mỗi
// productCode. Add là upsert — gọi lại với cùng productCode sẽ ghi đè bản
// ghi cũ, không có danh sách lịch sử. Update yêu cầu bản ghi đã tồn tại.

func (l *Ledger) requireProduct(productCode string) error {
	if _, exists := l.products[productCode]; !exists {
		return errNotFound("Product not found")
	}
	return nil
}

// AddFarmingProcess ghi (đè) bản ghi quá trình canh tác của sản phẩm.
func (l *Ledger) AddFarmingProcess(caller string, rec FarmingProcess) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.requireAuthorized(caller); err != nil {
		return err
	}
	if err := l.requireProduct(rec.ProductCode); err != nil {
		return err
	}
	l.farming[rec.ProductCode] = rec
	l.emit(EventFarmingProcessAdded, rec.ProductCode, caller, rec)
	return nil
}

// UpdateFarmingProcess thay thế bản ghi canh tác đã tồn tại.
func (l *Ledger) UpdateFarmingProcess(caller string, rec FarmingProcess) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.requireAuthorized(caller); err != nil {
		return err
	}
	if err := l.requireProduct(rec.ProductCode); err != nil {
		return err
	}
	if _, exists := l.farming[rec.ProductCode]; !exists {
		return errNotFound("Farming process not found")
	}
	l.farming[rec.ProductCode] = rec
	l.emit(EventFarmingProcessUpdated, rec.ProductCode, caller, rec)
	return nil
}

// GetFarmingProcess trả về bản ghi canh tác của sản phẩm.
func (l *Ledger) GetFarmingProcess(productCode string) (FarmingProcess, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	rec, exists := l.farming[productCode]
	if !exists {
		return FarmingProcess{}, errNotFound("Farming process not found")
	}
	return rec, nil
}

// AddMedicine ghi (đè) bản ghi sử dụng thuốc của sản phẩm.
func (l *Ledger) AddMedicine(caller string, rec Medicine) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.requireAuthorized(caller); err != nil {
		return err
	}
	if err := l.requireProduct(rec.ProductCode); err != nil {
		return err
	}
	l.medicines[rec.ProductCode] = rec
	l.emit(EventMedicineAdded, rec.ProductCode, caller, rec)
	return nil
}

// UpdateMedicine thay thế bản ghi thuốc đã tồn tại.
func (l *Ledger) UpdateMedicine(caller string, rec Medicine) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.requireAuthorized(caller); err != nil {
		return err
	}
	if err := l.requireProduct(rec.ProductCode); err != nil {
		return err
	}
	if _, exists := l.medicines[rec.ProductCode]; !exists {
		return errNotFound("Medicine record not found")
	}
	l.medicines[rec.ProductCode] = rec
	l.emit(EventMedicineUpdated, rec.ProductCode, caller, rec)
	return nil
}

// GetMedicine trả về bản ghi thuốc của sản phẩm.
func (l *Ledger) GetMedicine(productCode string) (Medicine, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	rec, exists := l.medicines[productCode]
	if !exists {
		return Medicine{}, errNotFound("Medicine record not found")
	}
	return rec, nil
}

// AddFertilizer ghi (đè) bản ghi bón phân của sản phẩm.
func (l *Ledger) AddFertilizer(caller string, rec Fertilizer) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.requireAuthorized(caller); err != nil {
		return err
	}
	if err := l.requireProduct(rec.ProductCode); err != nil {
		return err
	}
	l.fertilizers[rec.ProductCode] = rec
	l.emit(EventFertilizerAdded, rec.ProductCode, caller, rec)
	return nil
}

// UpdateFertilizer thay thế bản ghi phân bón đã tồn tại.
func (l *Ledger) UpdateFertilizer(caller string, rec Fertilizer) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.requireAuthorized(caller); err != nil {
		return err
	}
	if err := l.requireProduct(rec.ProductCode); err != nil {
		return err
	}
	if _, exists := l.fertilizers[rec.ProductCode]; !exists {
		return errNotFound("Fertilizer record not found")
	}
	l.fertilizers[rec.ProductCode] = rec
	l.emit(EventFertilizerUpdated, rec.ProductCode, caller, rec)
	return nil
}

// GetFertilizer trả về bản ghi phân bón của sản phẩm.
func (l *Ledger) GetFertilizer(productCode string) (Fertilizer, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	rec, exists := l.fertilizers[productCode]
	if !exists {
		return Fertilizer{}, errNotFound("Fertilizer record not found")
	}
	return rec, nil
}

// AddHarvest ghi (đè) bản ghi thu hoạch của sản phẩm.
func (l *Ledger) AddHarvest(caller string, rec Harvest) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.requireAuthorized(caller); err != nil {
		return err
	}
	if err := l.requireProduct(rec.ProductCode); err != nil {
		return err
	}
	l.harvests[rec.ProductCode] = rec
	l.emit(EventHarvestAdded, rec.ProductCode, caller, rec)
	return nil
}

// UpdateHarvest thay thế bản ghi thu hoạch đã tồn tại.
func (l *Ledger) UpdateHarvest(caller string, rec Harvest) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.requireAuthorized(caller); err != nil {
		return err
	}
	if err := l.requireProduct(rec.ProductCode); err != nil {
		return err
	}
	if _, exists := l.harvests[rec.ProductCode]; !exists {
		return errNotFound("Harvest record not found")
	}
	l.harvests[rec.ProductCode] = rec
	l.emit(EventHarvestUpdated, rec.ProductCode, caller, rec)
	return nil
}

// GetHarvest trả về bản ghi thu hoạch của sản phẩm.
func (l *Ledger) GetHarvest(productCode string) (Harvest, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	rec, exists := l.harvests[productCode]
	if !exists {
		return Harvest{}, errNotFound("Harvest record not found")
	}
	return rec, nil
}

// AddDistribution ghi (đè) bản ghi phân phối của sản phẩm.
func (l *Ledger) AddDistribution(caller string, rec Distribution) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.requireAuthorized(caller); err != nil {
		return err
	}
	if err := l.requireProduct(rec.ProductCode); err != nil {
		return err
	}
	l.distributions[rec.ProductCode] = rec
	l.emit(EventDistributionAdded, rec.ProductCode, caller, rec)
	return nil
}

// UpdateDistribution thay thế bản ghi phân phối đã tồn tại.
func (l *Ledger) UpdateDistribution(caller string, rec Distribution) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.requireAuthorized(caller); err != nil {
		return err
	}
	if err := l.requireProduct(rec.ProductCode); err != nil {
		return err
	}
	if _, exists := l.distributions[rec.ProductCode]; !exists {
		return errNotFound("Distribution record not found")
	}
	l.distributions[rec.ProductCode] = rec
	l.emit(EventDistributionUpdated, rec.ProductCode, caller, rec)
	return nil
}

// GetDistribution trả về bản ghi phân phối của sản phẩm.
func (l *Ledger) GetDistribution(productCode string) (Distribution, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	rec, exists := l.distributions[productCode]
	if !exists {
		return Distribution{}, errNotFound("Distribution record not found")
	}
	return rec, nil
}
