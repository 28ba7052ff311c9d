// Package ledger là engine registry truy xuất nguồn gốc nông sản: quản lý
// farm, sản phẩm, danh mục, các bản ghi quy trình canh tác và kiểm soát
// quyền ghi theo vai trò. Toàn bộ state nằm trong process; một RWMutex
// tuần tự hoá các mutation nên mỗi thao tác là nguyên tử — hoặc commit
// trọn vẹn kèm một sự kiện audit, hoặc không thay đổi gì cả.
package ledger

import "sync"

type Ledger struct {
	mu sync.RWMutex

	name    string
	version string

	// Role state.
	owner            string
	admin            string
	authorizedUsers  map[string]bool
	farmOwners       map[string]bool
	productVerifiers map[string]bool

	// Farm registry.
	farms       map[string]*Farm
	farmCodes   []string            // thứ tự đăng ký, dùng cho GetAllFarms
	farmsByUser map[string][]string // userId -> farm codes

	// Category registry.
	categories    map[string]*Category
	categoryNames []string

	// Product registry.
	products       map[string]*Product
	productCodes   []string
	productsByFarm map[string][]string

	// Process record store: mỗi kind giữ đúng một slot cho mỗi productCode.
	farming       map[string]FarmingProcess
	medicines     map[string]Medicine
	fertilizers   map[string]Fertilizer
	harvests      map[string]Harvest
	distributions map[string]Distribution

	totalFarms    uint64
	totalProducts uint64

	events []Event
	sinks  []EventSink
}

// New khởi tạo ledger. Owner đồng thời là admin và được cấp cả ba capability
// để hệ thống dùng được ngay sau khi deploy.
func New(name, version, owner string) *Ledger {
	l := &Ledger{
		name:             name,
		version:          version,
		owner:            owner,
		admin:            owner,
		authorizedUsers:  make(map[string]bool),
		farmOwners:       make(map[string]bool),
		productVerifiers: make(map[string]bool),
		farms:            make(map[string]*Farm),
		farmsByUser:      make(map[string][]string),
		categories:       make(map[string]*Category),
		products:         make(map[string]*Product),
		productsByFarm:   make(map[string][]string),
		farming:          make(map[string]FarmingProcess),
		medicines:        make(map[string]Medicine),
		fertilizers:      make(map[string]Fertilizer),
		harvests:         make(map[string]Harvest),
		distributions:    make(map[string]Distribution),
	}
	l.authorizedUsers[owner] = true
	l.farmOwners[owner] = true
	l.productVerifiers[owner] = true
	return l
}

// AddSink đăng ký một observer nhận sự kiện audit. Gọi trước khi phục vụ
// request; không an toàn khi gọi đồng thời với mutation.
func (l *Ledger) AddSink(sink EventSink) {
	l.sinks = append(l.sinks, sink)
}

// Info trả về thông tin tự mô tả của registry.
func (l *Ledger) Info() ContractInfo {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return ContractInfo{
		Name:          l.name,
		Version:       l.version,
		TotalFarms:    l.totalFarms,
		TotalProducts: l.totalProducts,
		Owner:         l.owner,
	}
}

// TotalFarms trả về số farm đã đăng ký.
func (l *Ledger) TotalFarms() uint64 {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.totalFarms
}

// TotalProducts trả về số sản phẩm đã đăng ký.
func (l *Ledger) TotalProducts() uint64 {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.totalProducts
}
