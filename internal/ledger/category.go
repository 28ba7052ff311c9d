package ledger

import "time"

// AddCategory thêm một danh mục mới. Tên danh mục là namespace toàn cục:
// hai user khác nhau không thể tạo trùng tên. Không yêu cầu capability —
// danh mục chỉ là nhãn, không phải bản ghi nguồn gốc.
func (l *Ledger) AddCategory(caller, name, userID string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if name == "" {
		return errValidation("Empty category name")
	}
	if _, exists := l.categories[name]; exists {
		return errConflict("Category already exists")
	}

	l.categories[name] = &Category{
		Name:      name,
		UserID:    userID,
		CreatedAt: time.Now(),
	}
	l.categoryNames = append(l.categoryNames, name)

	l.emit(EventCategoryAdded, name, caller, *l.categories[name])
	return nil
}

// AllCategories trả về tên mọi danh mục theo thứ tự tạo.
func (l *Ledger) AllCategories() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return append([]string(nil), l.categoryNames...)
}

// CategoriesByUserID trả về tên các danh mục do một user tạo, theo thứ tự tạo.
func (l *Ledger) CategoriesByUserID(userID string) []string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	var names []string
	for _, name := range l.categoryNames {
		if l.categories[name].UserID == userID {
			names = append(names, name)
		}
	}
	return names
}

// CategoryExists kiểm tra một tên danh mục đã được đăng ký chưa.
func (l *Ledger) CategoryExists(name string) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	_, exists := l.categories[name]
	return exists
}
