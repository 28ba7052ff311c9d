package ledger

// Access control: các capability là cờ boolean theo danh tính người gọi,
// không gắn với bản ghi cụ thể nào. Mọi mutation phải qua guard clause
// requireAdmin/requireOwner/requireAuthorized trước khi đụng vào state.

func (l *Ledger) requireAdmin(caller string) error {
	if caller != l.admin && caller != l.owner {
		return errAccess("Only admin allowed")
	}
	return nil
}

func (l *Ledger) requireOwner(caller string) error {
	if caller != l.owner {
		return errAccess("Only owner allowed")
	}
	return nil
}

func (l *Ledger) requireAuthorized(caller string) error {
	if !l.authorizedUsers[caller] {
		return errAccess("Not authorized")
	}
	return nil
}

// AuthorizeUser cấp quyền ghi cho một danh tính. Chỉ admin được gọi.
func (l *Ledger) AuthorizeUser(caller, id string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.requireAdmin(caller); err != nil {
		return err
	}
	if id == "" {
		return errValidation("Empty user id")
	}
	l.authorizedUsers[id] = true
	return nil
}

// DeauthorizeUser thu hồi quyền ghi của một danh tính. Chỉ admin được gọi.
func (l *Ledger) DeauthorizeUser(caller, id string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.requireAdmin(caller); err != nil {
		return err
	}
	delete(l.authorizedUsers, id)
	return nil
}

// SetFarmOwner bật/tắt capability farm-owner cho một danh tính. Chỉ admin.
func (l *Ledger) SetFarmOwner(caller, id string, enabled bool) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.requireAdmin(caller); err != nil {
		return err
	}
	if id == "" {
		return errValidation("Empty user id")
	}
	if enabled {
		l.farmOwners[id] = true
	} else {
		delete(l.farmOwners, id)
	}
	return nil
}

// SetProductVerifier bật/tắt capability product-verifier cho một danh tính. Chỉ admin.
func (l *Ledger) SetProductVerifier(caller, id string, enabled bool) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.requireAdmin(caller); err != nil {
		return err
	}
	if id == "" {
		return errValidation("Empty user id")
	}
	if enabled {
		l.productVerifiers[id] = true
	} else {
		delete(l.productVerifiers, id)
	}
	return nil
}

// UpdateAdmin chuyển quyền admin sang danh tính khác. Chỉ owner được gọi.
func (l *Ledger) UpdateAdmin(caller, id string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.requireOwner(caller); err != nil {
		return err
	}
	if id == "" {
		return errValidation("Empty admin id")
	}
	l.admin = id
	return nil
}

// Owner trả về danh tính owner của registry.
func (l *Ledger) Owner() string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.owner
}

// Admin trả về danh tính admin hiện tại.
func (l *Ledger) Admin() string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.admin
}

// IsAuthorized kiểm tra capability authorized-writer.
func (l *Ledger) IsAuthorized(id string) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.authorizedUsers[id]
}

// IsFarmOwner kiểm tra capability farm-owner.
func (l *Ledger) IsFarmOwner(id string) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.farmOwners[id]
}

// IsProductVerifier kiểm tra capability product-verifier.
func (l *Ledger) IsProductVerifier(id string) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.productVerifiers[id]
}
