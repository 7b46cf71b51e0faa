package services

// ServiceContainer bundles the service facades handed to route registration.
type ServiceContainer struct {
	User          UserSvcFacade
	Auth          AuthSvcFacade
	PasswordReset PasswordResetSvcFacade
	GoogleOAuth   GoogleOAuthSvcFacade
	Hospital      HospitalSvcFacade
	Appointment   AppointmentSvcFacade
	Reminder      ReminderSvcFacade
	Sessions      SessionStore
}
