package model

import "fmt"

// APIError は統一エラーフォーマットを表す。
// UIに表示する原因カテゴリと対処方法を含む。
type APIError struct {
	Code     string // エラーコード
	Message  string // エラーメッセージ
	Category string // カテゴリ: auth, validation, dispatch, fleet, system
	Action   string // ユーザー向け対処方法
}

// Error はerrorインターフェースを実装する。
func (e *APIError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// 定義済みエラーコード
const (
	ErrCodeInvalidCredentials = "INVALID_CREDENTIALS"
	ErrCodeUnauthorized       = "UNAUTHORIZED"
	ErrCodeForbidden          = "FORBIDDEN"
	ErrCodeUserNotFound       = "USER_NOT_FOUND"
	ErrCodeDuplicateEmail     = "DUPLICATE_EMAIL"
	ErrCodeInvalidRole        = "INVALID_ROLE"
	ErrCodeTruckNotFound      = "TRUCK_NOT_FOUND"
	ErrCodeDriverNotFound     = "DRIVER_NOT_FOUND"
	ErrCodeLoadNotFound       = "LOAD_NOT_FOUND"
	ErrCodeLoadNotPending     = "LOAD_NOT_PENDING"
	ErrCodeLoadNotAssigned    = "LOAD_NOT_ASSIGNED"
	ErrCodeTruckNotAssignable = "TRUCK_NOT_ASSIGNABLE"
	ErrCodeDriverNotAvailable = "DRIVER_NOT_AVAILABLE"
	ErrCodeDocumentNotFound   = "DOCUMENT_NOT_FOUND"
	ErrCodeInvalidStatus      = "INVALID_STATUS"
)

// NewInvalidCredentialsError は認証失敗エラーを生成する。
// メールアドレス不明とパスワード不一致を区別せず、同一のエラーを返す。
func NewInvalidCredentialsError() *APIError {
	return &APIError{
		Code:     ErrCodeInvalidCredentials,
		Message:  "メールアドレスまたはパスワードが正しくありません。",
		Category: "auth",
		Action:   "入力内容を確認して再度お試しください。",
	}
}

// NewUnauthorizedError は未認証エラーを生成する。
func NewUnauthorizedError() *APIError {
	return &APIError{
		Code:     ErrCodeUnauthorized,
		Message:  "認証が必要です。",
		Category: "auth",
		Action:   "ログインしてください。",
	}
}

// NewForbiddenError は権限不足エラーを生成する。
func NewForbiddenError(action string) *APIError {
	return &APIError{
		Code:     ErrCodeForbidden,
		Message:  fmt.Sprintf("この操作を行う権限がありません: %s", action),
		Category: "auth",
		Action:   "権限を持つロールでログインし直してください。",
	}
}

// NewUserNotFoundError はユーザーが見つからない場合のエラーを生成する。
func NewUserNotFoundError() *APIError {
	return &APIError{
		Code:     ErrCodeUserNotFound,
		Message:  "ユーザーが見つかりません。",
		Category: "auth",
		Action:   "ログインし直してください。",
	}
}

// NewDuplicateEmailError はメールアドレス重複エラーを生成する。
func NewDuplicateEmailError(email string) *APIError {
	return &APIError{
		Code:     ErrCodeDuplicateEmail,
		Message:  fmt.Sprintf("このメールアドレスは既に登録されています: %s", email),
		Category: "validation",
		Action:   "別のメールアドレスを指定してください。",
	}
}

// NewInvalidRoleError は未定義ロールエラーを生成する。
func NewInvalidRoleError(role string) *APIError {
	return &APIError{
		Code:     ErrCodeInvalidRole,
		Message:  fmt.Sprintf("無効なロールです: %s", role),
		Category: "validation",
		Action:   "admin、fleet_manager、dispatcher、driver のいずれかを指定してください。",
	}
}

// NewTruckNotFoundError はトラック未検出エラーを生成する。
func NewTruckNotFoundError(truckID string) *APIError {
	return &APIError{
		Code:     ErrCodeTruckNotFound,
		Message:  fmt.Sprintf("指定されたトラックが見つかりません: %s", truckID),
		Category: "fleet",
		Action:   "トラックIDを確認してください。",
	}
}

// NewDriverNotFoundError はドライバー未検出エラーを生成する。
func NewDriverNotFoundError(driverID string) *APIError {
	return &APIError{
		Code:     ErrCodeDriverNotFound,
		Message:  fmt.Sprintf("指定されたドライバーが見つかりません: %s", driverID),
		Category: "fleet",
		Action:   "ドライバーIDを確認してください。",
	}
}

// NewLoadNotFoundError は貨物未検出エラーを生成する。
func NewLoadNotFoundError(loadID string) *APIError {
	return &APIError{
		Code:     ErrCodeLoadNotFound,
		Message:  fmt.Sprintf("指定された貨物が見つかりません: %s", loadID),
		Category: "dispatch",
		Action:   "貨物IDを確認してください。",
	}
}

// NewLoadNotPendingError は割当不可能な状態の貨物への割当エラーを生成する。
func NewLoadNotPendingError(status LoadStatus) *APIError {
	return &APIError{
		Code:     ErrCodeLoadNotPending,
		Message:  fmt.Sprintf("この貨物は割当可能な状態ではありません（現在: %s）。", status),
		Category: "dispatch",
		Action:   "割当はpending状態の貨物に対してのみ実行できます。",
	}
}

// NewLoadNotAssignedError は未割当貨物への割当解除エラーを生成する。
func NewLoadNotAssignedError() *APIError {
	return &APIError{
		Code:     ErrCodeLoadNotAssigned,
		Message:  "この貨物は割当されていません。",
		Category: "dispatch",
		Action:   "割当解除はassigned状態の貨物に対してのみ実行できます。",
	}
}

// NewTruckNotAssignableError は割当不可能なトラックへの割当エラーを生成する。
func NewTruckNotAssignableError(status TruckStatus) *APIError {
	return &APIError{
		Code:     ErrCodeTruckNotAssignable,
		Message:  fmt.Sprintf("このトラックは割当可能な状態ではありません（現在: %s）。", status),
		Category: "dispatch",
		Action:   "active または idle 状態のトラックを選択してください。",
	}
}

// NewDriverNotAvailableError は乗務不可能なドライバーへの割当エラーを生成する。
func NewDriverNotAvailableError(status DriverStatus) *APIError {
	return &APIError{
		Code:     ErrCodeDriverNotAvailable,
		Message:  fmt.Sprintf("このドライバーは乗務可能な状態ではありません（現在: %s）。", status),
		Category: "dispatch",
		Action:   "available 状態のドライバーを選択してください。",
	}
}

// NewDocumentNotFoundError は書類未検出エラーを生成する。
func NewDocumentNotFoundError(documentID string) *APIError {
	return &APIError{
		Code:     ErrCodeDocumentNotFound,
		Message:  fmt.Sprintf("指定された書類が見つかりません: %s", documentID),
		Category: "validation",
		Action:   "書類IDを確認してください。",
	}
}

// NewInvalidStatusError は無効なステータスフィルタエラーを生成する。
func NewInvalidStatusError(status string) *APIError {
	return &APIError{
		Code:     ErrCodeInvalidStatus,
		Message:  fmt.Sprintf("無効なステータスです: %s", status),
		Category: "validation",
		Action:   "定義済みのステータス値を指定してください。",
	}
}
