package vault

import (
	"fmt"
	"strings"

	"github.com/deomiarn/securevault/internal/utils/flags"

	"github.com/AlecAivazis/survey/v2/core"
)

// SecretType is the kind of value a secret holds
type SecretType string

// set of supported secret types
const (
	SecretTypeEmpty       SecretType = ""
	SecretTypePassword    SecretType = "PASSWORD"
	SecretTypeAPIKey      SecretType = "API_KEY"
	SecretTypeNote        SecretType = "NOTE"
	SecretTypeCertificate SecretType = "CERTIFICATE"
	SecretTypeOther       SecretType = "OTHER"
)

func (st SecretType) String() string { return string(st) }

// Type returns the SecretType type
func (st SecretType) Type() string { return flags.TypeString }

// Set validates and sets the secret type value
func (st *SecretType) Set(val string) error {
	newSecretType := SecretType(strings.ToUpper(val))

	if !isValidSecretType(newSecretType) {
		return errInvalidEnumValue(SecretTypeValues)
	}

	*st = newSecretType
	return nil
}

// WriteAnswer validates and sets the secret type value
func (st *SecretType) WriteAnswer(name string, value interface{}) error {
	return st.Set(answerValue(value))
}

func isValidSecretType(st SecretType) bool {
	switch st {
	case
		SecretTypeEmpty, // allow secret type to be optional
		SecretTypePassword,
		SecretTypeAPIKey,
		SecretTypeNote,
		SecretTypeCertificate,
		SecretTypeOther:
		return true
	}
	return false
}

// Permission is the access level granted by a share
type Permission string

// set of supported share permissions
const (
	PermissionEmpty Permission = ""
	PermissionRead  Permission = "READ"
	PermissionWrite Permission = "WRITE"
)

func (p Permission) String() string { return string(p) }

// Type returns the Permission type
func (p Permission) Type() string { return flags.TypeString }

// Set validates and sets the permission value
func (p *Permission) Set(val string) error {
	newPermission := Permission(strings.ToUpper(val))

	switch newPermission {
	case PermissionEmpty, PermissionRead, PermissionWrite:
	default:
		return errInvalidEnumValue(PermissionValues)
	}

	*p = newPermission
	return nil
}

// WriteAnswer validates and sets the permission value
func (p *Permission) WriteAnswer(name string, value interface{}) error {
	return p.Set(answerValue(value))
}

func answerValue(value interface{}) string {
	switch v := value.(type) {
	case core.OptionAnswer:
		return v.Value
	case string:
		return v
	}
	return fmt.Sprint(value)
}

// AuditAction is the action recorded by an audit event
type AuditAction string

// set of audited actions
const (
	AuditActionEmpty                  AuditAction = ""
	AuditActionUserRegistered         AuditAction = "USER_REGISTERED"
	AuditActionUserLogin              AuditAction = "USER_LOGIN"
	AuditActionUserLoginFailed        AuditAction = "USER_LOGIN_FAILED"
	AuditActionUserLogout             AuditAction = "USER_LOGOUT"
	AuditActionTokenRefreshed         AuditAction = "TOKEN_REFRESHED"
	AuditActionTOTPEnabled            AuditAction = "TOTP_ENABLED"
	AuditActionTOTPDisabled           AuditAction = "TOTP_DISABLED"
	AuditActionTOTPVerified           AuditAction = "TOTP_VERIFIED"
	AuditActionSecretCreated          AuditAction = "SECRET_CREATED"
	AuditActionSecretRead             AuditAction = "SECRET_READ"
	AuditActionSecretUpdated          AuditAction = "SECRET_UPDATED"
	AuditActionSecretDeleted          AuditAction = "SECRET_DELETED"
	AuditActionFolderCreated          AuditAction = "FOLDER_CREATED"
	AuditActionFolderUpdated          AuditAction = "FOLDER_UPDATED"
	AuditActionFolderDeleted          AuditAction = "FOLDER_DELETED"
	AuditActionSecretShared           AuditAction = "SECRET_SHARED"
	AuditActionShareRevoked           AuditAction = "SHARE_REVOKED"
	AuditActionSharePermissionChanged AuditAction = "SHARE_PERMISSION_CHANGED"
)

func (aa AuditAction) String() string { return string(aa) }

// Type returns the AuditAction type
func (aa AuditAction) Type() string { return flags.TypeString }

// Set validates and sets the audit action value
func (aa *AuditAction) Set(val string) error {
	newAction := AuditAction(strings.ToUpper(val))

	if newAction != AuditActionEmpty && !contains(AuditActionValues, newAction.String()) {
		return errInvalidEnumValue(AuditActionValues)
	}

	*aa = newAction
	return nil
}

// ResourceType is the kind of resource an audit event refers to
type ResourceType string

// set of audited resource types
const (
	ResourceTypeEmpty  ResourceType = ""
	ResourceTypeUser   ResourceType = "USER"
	ResourceTypeSecret ResourceType = "SECRET"
	ResourceTypeFolder ResourceType = "FOLDER"
	ResourceTypeShare  ResourceType = "SHARE"
)

func (rt ResourceType) String() string { return string(rt) }

// Type returns the ResourceType type
func (rt ResourceType) Type() string { return flags.TypeString }

// Set validates and sets the resource type value
func (rt *ResourceType) Set(val string) error {
	newResourceType := ResourceType(strings.ToUpper(val))

	if newResourceType != ResourceTypeEmpty && !contains(ResourceTypeValues, newResourceType.String()) {
		return errInvalidEnumValue(ResourceTypeValues)
	}

	*rt = newResourceType
	return nil
}

// EventStatus is the outcome recorded by an audit event
type EventStatus string

// set of audit event outcomes
const (
	EventStatusEmpty   EventStatus = ""
	EventStatusSuccess EventStatus = "SUCCESS"
	EventStatusFailure EventStatus = "FAILURE"
)

func (es EventStatus) String() string { return string(es) }

// Type returns the EventStatus type
func (es EventStatus) Type() string { return flags.TypeString }

// Set validates and sets the event status value
func (es *EventStatus) Set(val string) error {
	newStatus := EventStatus(strings.ToUpper(val))

	switch newStatus {
	case EventStatusEmpty, EventStatusSuccess, EventStatusFailure:
	default:
		return errInvalidEnumValue(EventStatusValues)
	}

	*es = newStatus
	return nil
}

// set of known enum values
var (
	SecretTypeValues = []string{
		SecretTypePassword.String(),
		SecretTypeAPIKey.String(),
		SecretTypeNote.String(),
		SecretTypeCertificate.String(),
		SecretTypeOther.String(),
	}
	PermissionValues = []string{
		PermissionRead.String(),
		PermissionWrite.String(),
	}
	AuditActionValues = []string{
		AuditActionUserRegistered.String(),
		AuditActionUserLogin.String(),
		AuditActionUserLoginFailed.String(),
		AuditActionUserLogout.String(),
		AuditActionTokenRefreshed.String(),
		AuditActionTOTPEnabled.String(),
		AuditActionTOTPDisabled.String(),
		AuditActionTOTPVerified.String(),
		AuditActionSecretCreated.String(),
		AuditActionSecretRead.String(),
		AuditActionSecretUpdated.String(),
		AuditActionSecretDeleted.String(),
		AuditActionFolderCreated.String(),
		AuditActionFolderUpdated.String(),
		AuditActionFolderDeleted.String(),
		AuditActionSecretShared.String(),
		AuditActionShareRevoked.String(),
		AuditActionSharePermissionChanged.String(),
	}
	ResourceTypeValues = []string{
		ResourceTypeUser.String(),
		ResourceTypeSecret.String(),
		ResourceTypeFolder.String(),
		ResourceTypeShare.String(),
	}
	EventStatusValues = []string{
		EventStatusSuccess.String(),
		EventStatusFailure.String(),
	}
)

func contains(values []string, value string) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}
	return false
}

func errInvalidEnumValue(validValues []string) error {
	return fmt.Errorf("unsupported value, use one of [%s] instead", strings.Join(validValues, ", "))
}
