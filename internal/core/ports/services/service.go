package services

// ServiceContainer holds instances of all the application services.
// It is the entry point the handlers use to reach the core.
type ServiceContainer struct {
	User       UserSvcFacade
	Entry      EntrySvcFacade
	Reference  ReferenceDataSvcFacade
	Goal       GoalSvcFacade
	Dashboard  DashboardSvcFacade
	Export     ExportSvcFacade
	Token      TokenSvcFacade
	GoogleAuth GoogleAuthSvcFacade
}
