package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates failed authentication (wrong password, bad reset token,
// missing or expired session).
var ErrUnauthorized = errors.New("unauthorized")

// ErrForbidden indicates the authenticated user may not perform the operation.
var ErrForbidden = errors.New("forbidden")

// ErrExternalAuthOnly indicates the account authenticates through an external
// identity provider and has no local password to verify or reset.
var ErrExternalAuthOnly = errors.New("account uses external authentication")

// ErrMailDelivery indicates the mail transport failed to deliver a message.
var ErrMailDelivery = errors.New("mail delivery failed")

// ErrSessionStore indicates the session store failed to create or destroy a session.
var ErrSessionStore = errors.New("session store error")
