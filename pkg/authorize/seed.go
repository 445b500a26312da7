package authorize

import (
	"context"
	"log/slog"
)

// SeedDefaultPolicies sets up the baseline RBAC policies for the system.
func SeedDefaultPolicies(ctx context.Context, auth IAuthorization) error {
	logger := slog.Default()

	// System-level policies (domain: sys)
	sysPolicies := []PermissionPolicy{
		// Admin: god mode
		{RoleSysAdmin, DomainSys, WildcardResource, WildcardAction, EffectAllow},

		// Radiologist: work the exam queue
		{RoleRadiologist, DomainSys, ResourceExam, ActionRead, EffectAllow},
		{RoleRadiologist, DomainSys, ResourceExam, ActionList, EffectAllow},
		{RoleRadiologist, DomainSys, ResourceExam, ActionClaim, EffectAllow},
		{RoleRadiologist, DomainSys, ResourceExam, ActionFinalize, EffectAllow},
		{RoleRadiologist, DomainSys, ResourceExamFile, ActionRead, EffectAllow},
		{RoleRadiologist, DomainSys, ResourceExamReport, ActionCreate, EffectAllow},
		{RoleRadiologist, DomainSys, ResourceExamReport, ActionRead, EffectAllow},
		{RoleRadiologist, DomainSys, ResourceExamType, ActionList, EffectAllow},
		{RoleRadiologist, DomainSys, ResourceMeeting, ActionRead, EffectAllow},
		{RoleRadiologist, DomainSys, ResourceMeeting, ActionList, EffectAllow},
		{RoleRadiologist, DomainSys, ResourceVacation, ActionManage, EffectAllow},

		// Clinic user: submit and follow own exams
		{RoleClinicUser, DomainSys, ResourceExam, ActionCreate, EffectAllow},
		{RoleClinicUser, DomainSys, ResourceExam, ActionRead, EffectAllow},
		{RoleClinicUser, DomainSys, ResourceExam, ActionList, EffectAllow},
		{RoleClinicUser, DomainSys, ResourceExam, ActionCancel, EffectAllow},
		{RoleClinicUser, DomainSys, ResourceExamFile, ActionCreate, EffectAllow},
		{RoleClinicUser, DomainSys, ResourceExamFile, ActionRead, EffectAllow},
		{RoleClinicUser, DomainSys, ResourceExamReport, ActionRead, EffectAllow},
		{RoleClinicUser, DomainSys, ResourceExamType, ActionList, EffectAllow},
		{RoleClinicUser, DomainSys, ResourceClient, ActionRead, EffectAllow},
	}

	// User-level policies (domain: user:*)
	userPolicies := []PermissionPolicy{
		{RoleUserSelf, WildcardDomain, ResourceUser, ActionRead, EffectAllow},
		{RoleUserSelf, WildcardDomain, ResourceUser, ActionUpdate, EffectAllow},
		{RoleUserSelf, WildcardDomain, ResourceAuthSession, ActionManage, EffectAllow},
		{RoleUserSelf, WildcardDomain, ResourceRefreshToken, ActionManage, EffectAllow},
	}

	allPolicies := append(sysPolicies, userPolicies...)

	for _, p := range allPolicies {
		added, err := auth.AddPermission(ctx, p.Subject, p.Domain, p.Object, p.Action, p.Effect)
		if err != nil {
			logger.Error("failed to add policy", "policy", p, "error", err)
			return err
		}
		if added {
			logger.Debug("added policy", "role", p.Subject, "domain", p.Domain, "resource", p.Object, "action", p.Action)
		}
	}

	logger.Info("seeded default RBAC policies", "count", len(allPolicies))
	return nil
}

// AssignUserSelfRole assigns the user:self role in the user's private domain.
// Call this when creating a new user.
func AssignUserSelfRole(ctx context.Context, auth IAuthorization, userID string) error {
	domain := UserDomain(userID)
	subject := GroupSubject(userID)

	_, err := auth.AddRoleForUserInDomain(ctx, subject, RoleUserSelf, domain)
	return err
}

// AssignAccountRole grants the Casbin role matching a users.role column
// value. Call this when an admin approves or provisions an account.
func AssignAccountRole(ctx context.Context, auth IAuthorization, userID, accountRole string) error {
	role, ok := RoleForAccount[accountRole]
	if !ok {
		return ErrInvalidArgs
	}
	subject := GroupSubject(userID)
	_, err := auth.AddRoleForUserInDomain(ctx, subject, role, DomainSys)
	return err
}

// RemoveAccountRole revokes the Casbin role matching a users.role column
// value. Call this when demoting or deleting an account.
func RemoveAccountRole(ctx context.Context, auth IAuthorization, userID, accountRole string) error {
	role, ok := RoleForAccount[accountRole]
	if !ok {
		return ErrInvalidArgs
	}
	subject := GroupSubject(userID)
	_, err := auth.RemoveRoleForUserInDomain(ctx, subject, role, DomainSys)
	return err
}

// AssignClientMembership links a clinic user to their clinic's domain.
func AssignClientMembership(ctx context.Context, auth IAuthorization, userID, clientID string) error {
	subject := GroupSubject(userID)
	_, err := auth.AddRoleForUserInDomain(ctx, subject, RoleClinicUser, ClientDomain(clientID))
	return err
}

// RemoveClientMembership unlinks a clinic user from their clinic's domain.
func RemoveClientMembership(ctx context.Context, auth IAuthorization, userID, clientID string) error {
	subject := GroupSubject(userID)
	_, err := auth.RemoveRoleForUserInDomain(ctx, subject, RoleClinicUser, ClientDomain(clientID))
	return err
}

// GetSystemRoles returns all roles a user has in the system domain.
func GetSystemRoles(ctx context.Context, auth IAuthorization, userID string) ([]Role, error) {
	return auth.GetRolesForUserInDomain(ctx, GroupSubject(userID), DomainSys)
}
