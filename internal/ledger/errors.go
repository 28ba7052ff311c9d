package ledger

import "errors"

// Kind phân loại lỗi trả về từ ledger.
type Kind uint8

const (
	// KindAccessControl: người gọi không có quyền thực hiện thao tác.
	KindAccessControl Kind = iota + 1
	// KindValidation: dữ liệu đầu vào không hợp lệ (rỗng, ngoài giới hạn...).
	KindValidation
	// KindNotFound: tham chiếu đến farm/product/category/record không tồn tại.
	KindNotFound
	// KindConflict: tạo mới một entity mà key đã tồn tại.
	KindConflict
)

func (k Kind) String() string {
	switch k {
	case KindAccessControl:
		return "AccessControl"
	case KindValidation:
		return "Validation"
	case KindNotFound:
		return "NotFound"
	case KindConflict:
		return "Conflict"
	}
	return "Unknown"
}

// Error là lỗi có phân loại của ledger. Mọi thao tác thất bại đều trả về
// *Error để handler phía trên ánh xạ sang HTTP status tương ứng.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Kind.String() + ": " + e.Message
}

func errAccess(msg string) *Error     { return &Error{Kind: KindAccessControl, Message: msg} }
func errValidation(msg string) *Error { return &Error{Kind: KindValidation, Message: msg} }
func errNotFound(msg string) *Error   { return &Error{Kind: KindNotFound, Message: msg} }
func errConflict(msg string) *Error   { return &Error{Kind: KindConflict, Message: msg} }

// IsKind kiểm tra err có phải là *Error với Kind k hay không.
func IsKind(err error, k Kind) bool {
	var le *Error
	if errors.As(err, &le) {
		return le.Kind == k
	}
	return false
}
