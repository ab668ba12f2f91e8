// Package consts provides operation name constants for the middleware hooks.
package consts

// Operation names for git-collab operations.
const (
	Init                  = "Init"
	AddRepository         = "AddRepository"
	RemoveRepository      = "RemoveRepository"
	ListRepositories      = "ListRepositories"
	ReconcileRepositories = "ReconcileRepositories"
	RotateUsers           = "RotateUsers"
)

// All returns every operation name.
func All() []string {
	return []string{
		Init,
		AddRepository,
		RemoveRepository,
		ListRepositories,
		ReconcileRepositories,
		RotateUsers,
	}
}
