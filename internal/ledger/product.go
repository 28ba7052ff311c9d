package ledger

import "time"

// ProductInput là tham số thêm sản phẩm mới.
type ProductInput struct {
	FarmCode           string             `json:"farmCode"`
	ProductCode        string             `json:"productCode"`
	CategoryName       string             `json:"categoryName"`
	Name               string             `json:"name"`
	Quantity           string             `json:"quantity"`
	Price              string             `json:"price"`
	Description        string             `json:"description"`
	Image              string             `json:"image"`
	BatchCode          string             `json:"batchCode"`
	Certification      string             `json:"certification"`
	CertificationLevel CertificationLevel `json:"certificationLevel"`
}

// ProductUpdate là tập trường được phép sửa của một sản phẩm.
// ProductCode và FarmCode là bất biến sau khi thêm.
type ProductUpdate struct {
	Name          string `json:"name"`
	Quantity      string `json:"quantity"`
	Price         string `json:"price"`
	Description   string `json:"description"`
	Image         string `json:"image"`
	BatchCode     string `json:"batchCode"`
	Certification string `json:"certification"`
}

// AddProduct thêm sản phẩm mới. Yêu cầu caller có quyền ghi, farmCode
// tham chiếu một farm tồn tại, productCode không rỗng và chưa tồn tại.
// Sản phẩm mới luôn ở trạng thái ACTIVE.
func (l *Ledger) AddProduct(caller string, in ProductInput) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.requireAuthorized(caller); err != nil {
		return err
	}
	if in.ProductCode == "" {
		return errValidation("Empty productCode")
	}
	if _, exists := l.farms[in.FarmCode]; !exists {
		return errNotFound("Farm not found")
	}
	if _, exists := l.products[in.ProductCode]; exists {
		return errConflict("Product already exists")
	}

	now := time.Now()
	product := &Product{
		FarmCode:           in.FarmCode,
		ProductCode:        in.ProductCode,
		CategoryName:       in.CategoryName,
		Name:               in.Name,
		Quantity:           in.Quantity,
		Price:              in.Price,
		Description:        in.Description,
		Image:              in.Image,
		BatchCode:          in.BatchCode,
		Certification:      in.Certification,
		CertificationLevel: in.CertificationLevel,
		Status:             StatusActive,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	l.products[in.ProductCode] = product
	l.productCodes = append(l.productCodes, in.ProductCode)
	l.productsByFarm[in.FarmCode] = append(l.productsByFarm[in.FarmCode], in.ProductCode)
	l.totalProducts++

	l.emit(EventProductAdded, in.ProductCode, caller, *product)
	return nil
}

// UpdateProduct cập nhật các trường cho phép của sản phẩm.
func (l *Ledger) UpdateProduct(caller, productCode string, upd ProductUpdate) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.requireAuthorized(caller); err != nil {
		return err
	}
	product, exists := l.products[productCode]
	if !exists {
		return errNotFound("Product not found")
	}

	product.Name = upd.Name
	product.Quantity = upd.Quantity
	product.Price = upd.Price
	product.Description = upd.Description
	product.Image = upd.Image
	product.BatchCode = upd.BatchCode
	product.Certification = upd.Certification
	product.UpdatedAt = time.Now()

	l.emit(EventProductUpdated, productCode, caller, *product)
	return nil
}

// DeactivateProduct chuyển sản phẩm từ ACTIVE sang INACTIVE. Idempotent:
// sản phẩm đã INACTIVE thì không lỗi và không phát thêm sự kiện.
func (l *Ledger) DeactivateProduct(caller, productCode string) error {
	return l.SetProductStatus(caller, productCode, StatusInactive)
}

// SetProductStatus chuyển trạng thái sản phẩm và phát sự kiện kèm trạng thái
// cũ/mới. Không đổi trạng thái thì không phát sự kiện.
func (l *Ledger) SetProductStatus(caller, productCode string, status ProductStatus) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.requireAuthorized(caller); err != nil {
		return err
	}
	product, exists := l.products[productCode]
	if !exists {
		return errNotFound("Product not found")
	}
	if status > StatusPendingVerification {
		return errValidation("Invalid product status")
	}
	if product.Status == status {
		return nil
	}

	old := product.Status
	product.Status = status
	product.UpdatedAt = time.Now()

	l.emit(EventProductStatusChanged, productCode, caller, ProductStatusChange{
		ProductCode: productCode,
		OldStatus:   old,
		NewStatus:   status,
	})
	return nil
}

// GetProduct trả về bản sao của sản phẩm theo productCode.
func (l *Ledger) GetProduct(productCode string) (Product, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	product, exists := l.products[productCode]
	if !exists {
		return Product{}, errNotFound("Product not found")
	}
	return *product, nil
}

// GetProductsByFarm trả về các sản phẩm của một farm theo thứ tự thêm vào.
func (l *Ledger) GetProductsByFarm(farmCode string) []Product {
	l.mu.RLock()
	defer l.mu.RUnlock()
	codes := l.productsByFarm[farmCode]
	products := make([]Product, 0, len(codes))
	for _, code := range codes {
		products = append(products, *l.products[code])
	}
	return products
}

// GetAllProducts trả về snapshot toàn bộ sản phẩm theo thứ tự thêm vào.
func (l *Ledger) GetAllProducts() []Product {
	l.mu.RLock()
	defer l.mu.RUnlock()
	products := make([]Product, 0, len(l.productCodes))
	for _, code := range l.productCodes {
		products = append(products, *l.products[code])
	}
	return products
}
