package ledger

import "time"

// Các hằng số giới hạn được công khai cho caller.
const (
	MinArea     = 1
	MaxArea     = 1_000_000
	MaxImages   = 10
	MaxQuantity = 1_000_000
)

// ProductStatus defines the lifecycle status of a product.
type ProductStatus uint8

const (
	StatusActive              ProductStatus = iota // ACTIVE
	StatusInactive                                 // INACTIVE
	StatusRecalled                                 // RECALLED
	StatusPendingVerification                      // PENDING_VERIFICATION
)

func (s ProductStatus) String() string {
	switch s {
	case StatusActive:
		return "ACTIVE"
	case StatusInactive:
		return "INACTIVE"
	case StatusRecalled:
		return "RECALLED"
	case StatusPendingVerification:
		return "PENDING_VERIFICATION"
	}
	return "UNKNOWN"
}

// CertificationLevel defines the certification grade of a product.
type CertificationLevel uint8

const (
	CertNone      CertificationLevel = iota // NONE
	CertBasic                               // BASIC
	CertOrganic                             // ORGANIC
	CertPremium                             // PREMIUM
	CertCertified                           // CERTIFIED
)

func (c CertificationLevel) String() string {
	switch c {
	case CertNone:
		return "NONE"
	case CertBasic:
		return "BASIC"
	case CertOrganic:
		return "ORGANIC"
	case CertPremium:
		return "PREMIUM"
	case CertCertified:
		return "CERTIFIED"
	}
	return "UNKNOWN"
}

// Farm là bản ghi trang trại, key là FarmCode (duy nhất, bất biến).
type Farm struct {
	FarmCode    string    `json:"farmCode"`
	Fullname    string    `json:"fullname"`
	NameFarm    string    `json:"nameFarm"`
	UserID      string    `json:"userId"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	Area        uint64    `json:"area"`
	Images      []string  `json:"images"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Category là danh mục sản phẩm, namespace phẳng theo tên.
type Category struct {
	Name      string    `json:"name"`
	UserID    string    `json:"userId"` // người tạo danh mục
	CreatedAt time.Time `json:"createdAt"`
}

// Product là bản ghi sản phẩm, key là ProductCode, tham chiếu một FarmCode.
type Product struct {
	FarmCode           string             `json:"farmCode"`
	ProductCode        string             `json:"productCode"`
	CategoryName       string             `json:"categoryName"`
	Name               string             `json:"name"`
	Quantity           string             `json:"quantity"` // free-form, ví dụ "500kg"
	Price              string             `json:"price"`    // free-form, ví dụ "45,000 VND/kg"
	Description        string             `json:"description"`
	Image              string             `json:"image"`
	BatchCode          string             `json:"batchCode"`
	Certification      string             `json:"certification"`
	CertificationLevel CertificationLevel `json:"certificationLevel"`
	Status             ProductStatus      `json:"status"`
	CreatedAt          time.Time          `json:"createdAt"`
	UpdatedAt          time.Time          `json:"updatedAt"`
}

// FarmingProcess ghi nhận quá trình canh tác của một sản phẩm.
// Các trường ngày tháng là chuỗi tự do, không kiểm tra lịch.
type FarmingProcess struct {
	ProductCode  string `json:"productCode"`
	NameProcess  string `json:"nameProcess"`
	Source       string `json:"source"` // nguồn giống
	PlantingDate string `json:"plantingDate"`
	SowingDate   string `json:"sowingDate"`
}

// Medicine ghi nhận một lần sử dụng thuốc bảo vệ thực vật.
type Medicine struct {
	ProductCode       string `json:"productCode"`
	NameMedicine      string `json:"nameMedicine"`
	Quantity          string `json:"quantity"`
	ApplicationDate   string `json:"applicationDate"`
	MedicineType      string `json:"medicineType"`
	ApplicationMethod string `json:"applicationMethod"`
}

// Fertilizer ghi nhận một lần bón phân.
type Fertilizer struct {
	ProductCode       string `json:"productCode"`
	NameFertilizer    string `json:"nameFertilizer"`
	Quantity          string `json:"quantity"`
	ApplicationDate   string `json:"applicationDate"`
	FertilizerType    string `json:"fertilizerType"`
	ApplicationMethod string `json:"applicationMethod"`
	ExpectedEffect    string `json:"expectedEffect"`
}

// Harvest ghi nhận thông tin thu hoạch.
type Harvest struct {
	ProductCode       string `json:"productCode"`
	HarvestDate       string `json:"harvestDate"`
	EstimatedQuantity string `json:"estimatedQuantity"`
	ActualQuantity    string `json:"actualQuantity"`
	Quality           string `json:"quality"`
	HarvestMethod     string `json:"harvestMethod"`
}

// Distribution ghi nhận thông tin phân phối.
type Distribution struct {
	ProductCode         string `json:"productCode"`
	DistributorName     string `json:"distributorName"`
	DistributionPartner string `json:"distributionPartner"`
	DistributionDate    string `json:"distributionDate"`
	TransportMethod     string `json:"transportMethod"`
	StorageConditions   string `json:"storageConditions"`
}

// Traceability là kết quả truy xuất nguồn gốc đầy đủ của một sản phẩm.
// Slot nào chưa có dữ liệu sẽ là zero value, không gây lỗi cho cả truy vấn.
type Traceability struct {
	Product        Product        `json:"product"`
	FarmingProcess FarmingProcess `json:"farmingProcess"`
	Medicine       Medicine       `json:"medicine"`
	Fertilizer     Fertilizer     `json:"fertilizer"`
	Harvest        Harvest        `json:"harvest"`
	Distribution   Distribution   `json:"distribution"`
}

// ContractInfo là thông tin tự mô tả của registry.
type ContractInfo struct {
	Name          string `json:"name"`
	Version       string `json:"version"`
	TotalFarms    uint64 `json:"totalFarms"`
	TotalProducts uint64 `json:"totalProducts"`
	Owner         string `json:"owner"`
}
