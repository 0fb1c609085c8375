package library

type ErrResponse struct {
	Code    int    `json:"error_code"`
	Message string `json:"error_message"`
}

func (e ErrResponse) Error() string {
	return e.Message
}

var ErrAuthorNotFound = ErrResponse{100, "author not found"}
var ErrCategoryNotFound = ErrResponse{101, "category not found"}
var ErrBookNotFound = ErrResponse{102, "book not found"}
var ErrUserNotFound = ErrResponse{103, "user not found"}
var ErrLoanNotFound = ErrResponse{104, "loan not found"}
var ErrFineNotFound = ErrResponse{105, "fine not found"}
var ErrUserNotEligible = ErrResponse{110, "user not found or inactive"}
var ErrUserHasPendingFines = ErrResponse{111, "user has pending fines and must pay them first"}
var ErrBookNotAvailable = ErrResponse{112, "book not found or inactive"}
var ErrNoCopiesAvailable = ErrResponse{113, "no copies of this book are available"}
var ErrLoanAlreadyReturned = ErrResponse{114, "this loan was already returned"}
var ErrFineAlreadyPaid = ErrResponse{115, "this fine was already paid"}
var ErrFineAmountInvalid = ErrResponse{116, "fine amount must be greater than zero"}
