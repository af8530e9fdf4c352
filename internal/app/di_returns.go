package app

import (
	"fmt"
	"sync"

	"github.com/onlinz/returns/internal/config"
	pricingDomain "github.com/onlinz/returns/internal/pricing/domain"
	pricingService "github.com/onlinz/returns/internal/pricing/service"
	returnsHTTP "github.com/onlinz/returns/internal/returns/http"
	returnsRepository "github.com/onlinz/returns/internal/returns/repository"
	returnsUseCase "github.com/onlinz/returns/internal/returns/usecase"
	"github.com/onlinz/returns/internal/validation"
)

// returnsComponents holds the return workflow components of the Container.
type returnsComponents struct {
	pricingEngine  *pricingService.Engine
	fieldValidator *validation.FieldValidator
	fileRepo       *returnsRepository.FileReceiptRepository
	receiptRepo    returnsUseCase.ReceiptRepository
	receiptUseCase returnsUseCase.ReceiptUseCase
	receiptHandler *returnsHTTP.ReceiptHandler

	pricingEngineInit  sync.Once
	fieldValidatorInit sync.Once
	fileRepoInit       sync.Once
	receiptRepoInit    sync.Once
	receiptUseCaseInit sync.Once
	receiptHandlerInit sync.Once
}

// PricingEngine returns the engine for the standard island tariff table.
func (c *Container) PricingEngine() *pricingService.Engine {
	c.pricingEngineInit.Do(func() {
		c.pricingEngine = pricingService.NewEngine(pricingDomain.DefaultTariffTable())
	})
	return c.pricingEngine
}

// FieldValidator returns the customer field predicates.
func (c *Container) FieldValidator() *validation.FieldValidator {
	c.fieldValidatorInit.Do(func() {
		c.fieldValidator = validation.NewFieldValidator(c.config.EmailAllowedDomains)
	})
	return c.fieldValidator
}

// FileReceiptRepository returns the JSON file receipt store.
func (c *Container) FileReceiptRepository() (*returnsRepository.FileReceiptRepository, error) {
	return lazy(c, &c.fileRepoInit, "fileRepo", &c.fileRepo, c.initFileReceiptRepository)
}

// ReceiptRepository returns the receipt store selected by DB_DRIVER.
func (c *Container) ReceiptRepository() (returnsUseCase.ReceiptRepository, error) {
	return lazy(c, &c.receiptRepoInit, "receiptRepo", &c.receiptRepo, c.initReceiptRepository)
}

// ReceiptUseCase returns the receipt use case, wrapped with metrics when enabled.
func (c *Container) ReceiptUseCase() (returnsUseCase.ReceiptUseCase, error) {
	return lazy(c, &c.receiptUseCaseInit, "receiptUseCase", &c.receiptUseCase, c.initReceiptUseCase)
}

// ReceiptHandler returns the HTTP handler for the returns API.
func (c *Container) ReceiptHandler() (*returnsHTTP.ReceiptHandler, error) {
	return lazy(c, &c.receiptHandlerInit, "receiptHandler", &c.receiptHandler, c.initReceiptHandler)
}

func (c *Container) initFileReceiptRepository() (*returnsRepository.FileReceiptRepository, error) {
	if c.config.ReceiptsFilePath == "" {
		return nil, fmt.Errorf("receipts file path is empty")
	}
	return returnsRepository.NewFileReceiptRepository(c.config.ReceiptsFilePath), nil
}

func (c *Container) initReceiptRepository() (returnsUseCase.ReceiptRepository, error) {
	if !c.config.UsesSQL() {
		if c.config.DBDriver != config.DriverFile {
			return nil, fmt.Errorf("unsupported receipt store driver: %s", c.config.DBDriver)
		}
		return c.FileReceiptRepository()
	}

	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for receipt repository: %w", err)
	}

	switch c.config.DBDriver {
	case config.DriverMySQL:
		return returnsRepository.NewMySQLReceiptRepository(db), nil
	case config.DriverPostgres:
		return returnsRepository.NewPostgreSQLReceiptRepository(db), nil
	default:
		return returnsRepository.NewSQLiteReceiptRepository(db), nil
	}
}

func (c *Container) initReceiptUseCase() (returnsUseCase.ReceiptUseCase, error) {
	txManager, err := c.TxManager()
	if err != nil {
		return nil, fmt.Errorf("failed to get tx manager for receipt use case: %w", err)
	}

	receiptRepo, err := c.ReceiptRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get receipt repository for receipt use case: %w", err)
	}

	baseUseCase := returnsUseCase.NewReceiptUseCase(
		txManager,
		receiptRepo,
		c.FieldValidator(),
		c.PricingEngine(),
		c.config.PhoneDefaultRegion,
	)

	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for receipt use case: %w", err)
		}
		return returnsUseCase.NewReceiptUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}

func (c *Container) initReceiptHandler() (*returnsHTTP.ReceiptHandler, error) {
	receiptUseCase, err := c.ReceiptUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get receipt use case for receipt handler: %w", err)
	}
	return returnsHTTP.NewReceiptHandler(receiptUseCase, c.Logger()), nil
}
