package management

import "context"

// Permissionは、権限チェックの対象です。
type Permission struct {
	Domain  string
	Action  Action
	ScopeID string
}

// Authorizerは、コールの前に権限を確認します。
//
// 拒否する場合はエラーを返却します。*errors.AuthorizationError以外のエラーは
// *errors.AuthorizationErrorでラップされます。
//
//go:generate mockgen -destination ./${GOPACKAGE}mock/${GOFILE} -package ${GOPACKAGE}mock -source ./${GOFILE}
type Authorizer interface {
	CheckPermission(ctx context.Context, p Permission) error
}

// AuthorizerFuncは、関数をAuthorizerとして使用するためのアダプターです。
type AuthorizerFunc func(ctx context.Context, p Permission) error

// CheckPermissionは、f(ctx, p)を呼び出します。
func (f AuthorizerFunc) CheckPermission(ctx context.Context, p Permission) error {
	return f(ctx, p)
}

// AllowAllは、すべてのコールを許可するAuthorizerを返却します。
func AllowAll() Authorizer {
	return AuthorizerFunc(func(context.Context, Permission) error { return nil })
}
