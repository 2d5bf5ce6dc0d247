package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	EntryRepo       EntryRepositoryFacade
	CategoryRepo    CategoryRepositoryFacade
	ResponsibleRepo ResponsibleRepositoryFacade
	TagRepo         TagRepositoryFacade
	GoalRepo        GoalRepositoryFacade
	UserRepo        UserRepositoryFacade
}
