package ledger

import "time"

// FarmInput là tham số đăng ký farm mới.
type FarmInput struct {
	FarmCode    string   `json:"farmCode"`
	Fullname    string   `json:"fullname"`
	NameFarm    string   `json:"nameFarm"`
	UserID      string   `json:"userId"`
	Email       string   `json:"email"`
	Phone       string   `json:"phone"`
	Description string   `json:"description"`
	Location    string   `json:"location"`
	Area        uint64   `json:"area"`
	Images      []string `json:"images"`
}

// FarmUpdate là tập trường được phép sửa của một farm.
// FarmCode và UserID là bất biến sau khi đăng ký.
type FarmUpdate struct {
	NameFarm    string   `json:"nameFarm"`
	Description string   `json:"description"`
	Location    string   `json:"location"`
	Area        uint64   `json:"area"`
	Images      []string `json:"images"`
}

func validateArea(area uint64) error {
	if area < MinArea || area > MaxArea {
		return errValidation("Invalid area")
	}
	return nil
}

func validateImages(images []string) error {
	if len(images) > MaxImages {
		return errValidation("Too many images")
	}
	return nil
}

// RegisterFarm đăng ký một farm mới. Yêu cầu caller có quyền ghi,
// farmCode không rỗng và chưa tồn tại, area và số ảnh trong giới hạn.
func (l *Ledger) RegisterFarm(caller string, in FarmInput) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.requireAuthorized(caller); err != nil {
		return err
	}
	if in.FarmCode == "" {
		return errValidation("Empty farmCode")
	}
	if _, exists := l.farms[in.FarmCode]; exists {
		return errConflict("Farm already exists")
	}
	if err := validateArea(in.Area); err != nil {
		return err
	}
	if err := validateImages(in.Images); err != nil {
		return err
	}

	now := time.Now()
	farm := &Farm{
		FarmCode:    in.FarmCode,
		Fullname:    in.Fullname,
		NameFarm:    in.NameFarm,
		UserID:      in.UserID,
		Email:       in.Email,
		Phone:       in.Phone,
		Description: in.Description,
		Location:    in.Location,
		Area:        in.Area,
		Images:      append([]string(nil), in.Images...),
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	l.farms[in.FarmCode] = farm
	l.farmCodes = append(l.farmCodes, in.FarmCode)
	l.farmsByUser[in.UserID] = append(l.farmsByUser[in.UserID], in.FarmCode)
	l.totalFarms++

	l.emit(EventFarmRegistered, in.FarmCode, caller, farm.clone())
	return nil
}

// UpdateFarm cập nhật các trường cho phép của farm. Yêu cầu farm tồn tại,
// caller có quyền ghi, và các giới hạn area/ảnh vẫn được thoả.
func (l *Ledger) UpdateFarm(caller, farmCode string, upd FarmUpdate) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.requireAuthorized(caller); err != nil {
		return err
	}
	farm, exists := l.farms[farmCode]
	if !exists {
		return errNotFound("Farm not found")
	}
	if err := validateArea(upd.Area); err != nil {
		return err
	}
	if err := validateImages(upd.Images); err != nil {
		return err
	}

	farm.NameFarm = upd.NameFarm
	farm.Description = upd.Description
	farm.Location = upd.Location
	farm.Area = upd.Area
	farm.Images = append([]string(nil), upd.Images...)
	farm.UpdatedAt = time.Now()

	l.emit(EventFarmUpdated, farmCode, caller, farm.clone())
	return nil
}

// DeactivateFarm đánh dấu farm ngừng hoạt động (soft delete). Idempotent:
// gọi lần hai trên farm đã inactive không lỗi và không phát thêm sự kiện.
func (l *Ledger) DeactivateFarm(caller, farmCode string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.requireAuthorized(caller); err != nil {
		return err
	}
	farm, exists := l.farms[farmCode]
	if !exists {
		return errNotFound("Farm not found")
	}
	if !farm.IsActive {
		return nil
	}
	farm.IsActive = false
	farm.UpdatedAt = time.Now()

	l.emit(EventFarmUpdated, farmCode, caller, farm.clone())
	return nil
}

// AddFarmImage thêm một ảnh vào cuối danh sách ảnh của farm.
func (l *Ledger) AddFarmImage(caller, farmCode, url string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.requireAuthorized(caller); err != nil {
		return err
	}
	farm, exists := l.farms[farmCode]
	if !exists {
		return errNotFound("Farm not found")
	}
	if url == "" {
		return errValidation("Empty image url")
	}
	if len(farm.Images) >= MaxImages {
		return errValidation("Too many images")
	}
	farm.Images = append(farm.Images, url)
	farm.UpdatedAt = time.Now()

	l.emit(EventFarmUpdated, farmCode, caller, farm.clone())
	return nil
}

// RemoveFarmImage xoá ảnh tại vị trí index. Các ảnh còn lại dồn sang trái,
// giữ nguyên thứ tự tương đối.
func (l *Ledger) RemoveFarmImage(caller, farmCode string, index int) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.requireAuthorized(caller); err != nil {
		return err
	}
	farm, exists := l.farms[farmCode]
	if !exists {
		return errNotFound("Farm not found")
	}
	if index < 0 || index >= len(farm.Images) {
		return errValidation("Image index out of range")
	}
	farm.Images = append(farm.Images[:index], farm.Images[index+1:]...)
	farm.UpdatedAt = time.Now()

	l.emit(EventFarmUpdated, farmCode, caller, farm.clone())
	return nil
}

// GetFarm trả về bản sao của farm theo farmCode.
func (l *Ledger) GetFarm(farmCode string) (Farm, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	farm, exists := l.farms[farmCode]
	if !exists {
		return Farm{}, errNotFound("Farm not found")
	}
	return farm.clone(), nil
}

// GetFarmImages trả về danh sách ảnh của một farm.
func (l *Ledger) GetFarmImages(farmCode string) ([]string, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	farm, exists := l.farms[farmCode]
	if !exists {
		return nil, errNotFound("Farm not found")
	}
	return append([]string(nil), farm.Images...), nil
}

// GetFarmsByUserID trả về các farm đăng ký dưới một userId, theo thứ tự đăng ký.
// Kết quả có thể rỗng; đây không phải lỗi.
func (l *Ledger) GetFarmsByUserID(userID string) []Farm {
	l.mu.RLock()
	defer l.mu.RUnlock()
	codes := l.farmsByUser[userID]
	farms := make([]Farm, 0, len(codes))
	for _, code := range codes {
		farms = append(farms, l.farms[code].clone())
	}
	return farms
}

// GetAllFarms trả về snapshot toàn bộ farm theo thứ tự đăng ký.
func (l *Ledger) GetAllFarms() []Farm {
	l.mu.RLock()
	defer l.mu.RUnlock()
	farms := make([]Farm, 0, len(l.farmCodes))
	for _, code := range l.farmCodes {
		farms = append(farms, l.farms[code].clone())
	}
	return farms
}

// UserExists trả về true nếu có ít nhất một farm đăng ký dưới userId này.
func (l *Ledger) UserExists(userID string) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.farmsByUser[userID]) > 0
}

// clone trả về bản sao sâu để caller không sửa được state bên trong ledger.
func (f *Farm) clone() Farm {
	out := *f
	out.Images = append([]string(nil), f.Images...)
	return out
}
