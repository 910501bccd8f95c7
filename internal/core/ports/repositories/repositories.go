package repositories

// RepositoryProvider bundles every repository the application wires at
// startup.
type RepositoryProvider struct {
	CurrencyRepo CurrencyRepositoryFacade
	ForexRepo    ForexRepositoryFacade
	OfferRepo    OfferRepositoryFacade
	StagingRepo  StagingRepositoryFacade
	BatchRepo    BatchRepositoryFacade
}
