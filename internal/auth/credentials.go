package auth

import "crypto/subtle"

// CredentialVerifier はパスワード検証のインターフェース。
// 本番移行時にハッシュ照合やユーザー別シークレットの実装へ差し替えるための抽象化。
type CredentialVerifier interface {
	// Verify はemailに対するpasswordの正否を返す。
	Verify(email, password string) bool
}

// FixedPasswordVerifier は全ユーザー共通の固定パスワードで検証するスタブ実装。
// 現行システムの挙動の再現であり、認証基盤としては成立しない。
// 本番では必ず実装を差し替えること。
type FixedPasswordVerifier struct {
	password string
}

// NewFixedPasswordVerifier はFixedPasswordVerifierを生成する。
func NewFixedPasswordVerifier(password string) *FixedPasswordVerifier {
	return &FixedPasswordVerifier{password: password}
}

// Verify は固定パスワードと比較する。emailは参照しない。
func (v *FixedPasswordVerifier) Verify(_, password string) bool {
	return subtle.ConstantTimeCompare([]byte(v.password), []byte(password)) == 1
}
