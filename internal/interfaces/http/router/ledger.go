package router

import (
	"github.com/gin-gonic/gin"
	"github.com/propledger/backend/internal/interfaces/http/handler"
)

// LedgerHandlers bundles the handlers mounted under the API prefix
type LedgerHandlers struct {
	Accounts         *handler.AccountHandler
	Registry         *handler.RegistryHandler
	Property         *handler.PropertyHandler
	Billables        *handler.BillableHandler
	CashTransactions *handler.CashTransactionHandler
	Deposits         *handler.DepositHandler
	Movements        *handler.MovementHandler
	Journal          *handler.JournalHandler
	System           *handler.SystemHandler
}

// LedgerGroups builds the domain groups of the ledger API. When idempotency is
// non-nil it guards the POST routes that move money.
func LedgerGroups(h LedgerHandlers, idempotency gin.HandlerFunc) []*DomainGroup {
	guarded := func(fn gin.HandlerFunc) []gin.HandlerFunc {
		if idempotency == nil {
			return []gin.HandlerFunc{fn}
		}
		return []gin.HandlerFunc{idempotency, fn}
	}

	accounts := NewDomainGroup("accounts", "/accounts").
		POST("", h.Accounts.Create).
		GET("", h.Accounts.List).
		GET("/:id", h.Accounts.GetByID).
		PUT("/:id", h.Accounts.Update).
		PATCH("/:id/deactivate", h.Accounts.Deactivate)

	concepts := NewDomainGroup("concepts", "/concepts").
		POST("", h.Registry.CreateConcept).
		GET("", h.Registry.ListConcepts).
		PATCH("/:id/deactivate", h.Registry.DeactivateConcept)

	expenseTypes := NewDomainGroup("expense-types", "/expense-types").
		POST("", h.Registry.CreateExpenseType).
		GET("", h.Registry.ListExpenseTypes).
		GET("/:id/eligible-accounts", h.Registry.EligibleAccounts).
		PATCH("/:id/deactivate", h.Registry.DeactivateExpenseType)

	instruments := NewDomainGroup("instruments", "/instruments").
		POST("", h.Registry.CreateInstrument).
		GET("", h.Registry.ListInstruments).
		PATCH("/:id/deactivate", h.Registry.DeactivateInstrument)

	units := NewDomainGroup("units", "/units").
		POST("", h.Property.CreateUnit).
		GET("", h.Property.ListUnits).
		GET("/:id", h.Property.GetUnit).
		PATCH("/:id/deactivate", h.Property.DeactivateUnit)

	contracts := NewDomainGroup("contracts", "/contracts").
		POST("", h.Property.CreateContract).
		GET("", h.Property.ListContracts).
		PATCH("/:id/terminate", h.Property.TerminateContract)

	billables := NewDomainGroup("billables", "/billables").
		POST("", h.Billables.Create).
		GET("", h.Billables.List).
		POST("/generate-global", h.Billables.GenerateGlobal).
		POST("/generate-retroactive", h.Billables.GenerateRetroactive).
		POST("/rollback-bulk", h.Billables.RollbackBulk).
		GET("/:id", h.Billables.GetByID).
		PATCH("/:id", h.Billables.Update).
		PATCH("/:id/cancel", h.Billables.Cancel)

	cash := NewDomainGroup("cash-transactions", "/cash-transactions").
		POST("", guarded(h.CashTransactions.Create)...).
		GET("", h.CashTransactions.List).
		GET("/:id", h.CashTransactions.GetByID).
		PATCH("/:id/cancel", h.CashTransactions.Cancel)

	deposits := NewDomainGroup("deposits", "/deposits").
		GET("/pending", h.Deposits.ListPending).
		POST("", guarded(h.Deposits.Create)...).
		GET("", h.Deposits.List).
		GET("/:id", h.Deposits.GetByID)

	transfers := NewDomainGroup("transfers", "/transfers").
		POST("", guarded(h.Movements.CreateTransfer)...).
		GET("", h.Movements.ListTransfers)

	expenses := NewDomainGroup("expenses", "/expenses").
		POST("", guarded(h.Movements.CreateExpense)...).
		GET("", h.Movements.ListExpenses)

	journal := NewDomainGroup("journal", "/journal-entries").
		GET("", h.Journal.List).
		GET("/:id", h.Journal.GetByID)

	groups := []*DomainGroup{
		accounts, concepts, expenseTypes, instruments, units, contracts,
		billables, cash, deposits, transfers, expenses, journal,
	}
	if h.System != nil {
		groups = append(groups, NewDomainGroup("system", "/health").GET("", h.System.Health))
	}
	return groups
}

// SetupLedger registers the ledger API on r and the bare /health check on the engine
func (r *Router) SetupLedger(h LedgerHandlers, idempotency gin.HandlerFunc) {
	for _, group := range LedgerGroups(h, idempotency) {
		r.Register(group)
	}
	if h.System != nil {
		r.engine.GET("/health", h.System.Health)
	}
	r.Setup()
}
