package ledger

// GetCompleteProductTraceability lắp ráp chuỗi nguồn gốc đầy đủ của một
// sản phẩm: bản ghi sản phẩm cộng cả năm bản ghi quy trình. Sản phẩm phải
// tồn tại; slot quy trình nào chưa được ghi thì trả về zero value thay vì
// làm cả truy vấn thất bại. Thuần đọc, không có side effect.
func (l *Ledger) GetCompleteProductTraceability(productCode string) (Traceability, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	product, exists := l.products[productCode]
	if !exists {
		return Traceability{}, errNotFound("Product not found")
	}

	return Traceability{
		Product:        *product,
		FarmingProcess: l.farming[productCode],
		Medicine:       l.medicines[productCode],
		Fertilizer:     l.fertilizers[productCode],
		Harvest:        l.harvests[productCode],
		Distribution:   l.distributions[productCode],
	}, nil
}
