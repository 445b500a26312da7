package authorize

import (
	"fmt"
	"regexp"
)

type Action string
type Resource string
type Role string
type Domain string

// ----------------------------
// Actions
// ----------------------------

const (
	ActionCreate Action = "create"
	ActionRead   Action = "read"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
	ActionList   Action = "list"

	// Power actions
	ActionManage  Action = "manage"  // CRUD + list
	ActionExecute Action = "execute" // run, trigger, start, stop, etc.

	// Exam lifecycle actions
	ActionClaim    Action = "claim"
	ActionFinalize Action = "finalize"
	ActionCancel   Action = "cancel"
	ActionReassign Action = "reassign"

	// RBAC-specific actions
	ActionGrant  Action = "grant"
	ActionRevoke Action = "revoke"
)

const (
	WildcardAction Action = "*"
)

var KnownActions = map[Action]struct{}{
	ActionCreate: {}, ActionRead: {}, ActionUpdate: {}, ActionDelete: {}, ActionList: {},
	ActionManage: {}, ActionExecute: {},
	ActionClaim: {}, ActionFinalize: {}, ActionCancel: {}, ActionReassign: {},
	ActionGrant: {}, ActionRevoke: {},
}

// ----------------------------
// Resources
// ----------------------------

const (
	WildcardResource Resource = "*"

	// Identity / auth
	ResourceUser         Resource = "user"
	ResourceAuthSession  Resource = "auth_session"
	ResourceRefreshToken Resource = "refresh_token"

	// Tenant management (dental clinics)
	ResourceClient Resource = "client"

	// Exam workflow
	ResourceExam       Resource = "exam"
	ResourceExamFile   Resource = "exam_file"
	ResourceExamReport Resource = "exam_report"
	ResourceExamType   Resource = "exam_type"

	// Financial
	ResourcePriceTable Resource = "price_table"
	ResourceDashboard  Resource = "dashboard"

	// Calendar
	ResourceMeeting  Resource = "meeting"
	ResourceVacation Resource = "vacation"

	// System / platform admin
	ResourceSystem Resource = "system"
	ResourceAudit  Resource = "audit"
	ResourceRBAC   Resource = "rbac"
)

var KnownResources = map[Resource]struct{}{
	ResourceUser: {}, ResourceAuthSession: {}, ResourceRefreshToken: {},
	ResourceClient: {},
	ResourceExam:   {}, ResourceExamFile: {}, ResourceExamReport: {}, ResourceExamType: {},
	ResourcePriceTable: {}, ResourceDashboard: {},
	ResourceMeeting: {}, ResourceVacation: {},
	ResourceSystem: {}, ResourceAudit: {}, ResourceRBAC: {},
}

// ----------------------------
// Roles
// ----------------------------
//
// These are the "policy subjects" we assign to users via grouping policies.

const (
	WildcardRole Role = "*"

	// System roles (domain = sys)
	RoleSysAdmin    Role = "role:sys:admin"
	RoleRadiologist Role = "role:radiologist"
	RoleClinicUser  Role = "role:clinic:user"

	// Private user scope (domain = user:<uuid>)
	RoleUserSelf Role = "role:user:self"
)

var KnownRoles = map[Role]struct{}{
	RoleSysAdmin:    {},
	RoleRadiologist: {},
	RoleClinicUser:  {},
	RoleUserSelf:    {},
}

// RoleForAccount maps the users.role column to the Casbin role granted at
// approval time.
var RoleForAccount = map[string]Role{
	"admin":       RoleSysAdmin,
	"radiologist": RoleRadiologist,
	"client":      RoleClinicUser,
}

// ----------------------------
// Domains
// ----------------------------

const (
	DomainSys Domain = "sys"
)

// Domain prefixes (for exact domains we generate per entity)
const (
	DomainPrefixClient Domain = "client:"
	DomainPrefixUser   Domain = "user:"
)

const (
	WildcardDomain Domain = "*"
)

var (
	reUUID = regexp.MustCompile(`^[0-9a-fA-F-]{36}$`)
)

// Domain builders (typed, safe)
func ClientDomain(clientID string) Domain {
	return Domain(fmt.Sprintf("%s%s", DomainPrefixClient, clientID))
}

func UserDomain(userID string) Domain {
	return Domain(fmt.Sprintf("%s%s", DomainPrefixUser, userID))
}

// IsValidDomain checks whether d is a recognised domain string.
func IsValidDomain(d Domain) bool {
	if d == DomainSys || d == WildcardDomain {
		return true
	}

	s := string(d)
	switch {
	case len(s) > len(DomainPrefixClient) && s[:len(DomainPrefixClient)] == string(DomainPrefixClient):
		return reUUID.MatchString(s[len(DomainPrefixClient):])
	case len(s) > len(DomainPrefixUser) && s[:len(DomainPrefixUser)] == string(DomainPrefixUser):
		return reUUID.MatchString(s[len(DomainPrefixUser):])
	default:
		return false
	}
}

// ----------------------------
// Casbin tuple helpers
// ----------------------------

type PolicyEffect string

const (
	EffectAllow PolicyEffect = "allow"
	EffectDeny  PolicyEffect = "deny"
)

// PolicySubject is the p.sub in Casbin: either a role (preferred) or a user/service id.
type PolicySubject string

// GroupSubject is the g.sub in Casbin: a concrete principal id (user_id or service_id).
type GroupSubject string

// Grouping rows: g, user_id, role, domain
type GroupingPolicy struct {
	Subject GroupSubject
	Role    Role
	Domain  Domain
}

// Permission rows: p, role, domain, resource, action, eft
type PermissionPolicy struct {
	Subject Role
	Domain  Domain
	Object  Resource
	Action  Action
	Effect  PolicyEffect
}
