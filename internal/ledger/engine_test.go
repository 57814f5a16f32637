package ledger_test

import (
	"context"
	"errors"

	"finledger/internal/invoice"
	"finledger/internal/ledger"
	"finledger/internal/ledger/fake"

	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var _ = Describe("Engine", func() {
	var (
		engine       *ledger.Engine
		fakeStore    *fake.Store
		fakeInvoices *fake.InvoiceService
		fakeLogger   *zap.SugaredLogger
		ctx          context.Context
		fakeErr      error

		walletId uuid.UUID
		wallet   ledger.Wallet
	)

	BeforeEach(func() {
		fakeStore = new(fake.Store)
		fakeInvoices = new(fake.InvoiceService)
		fakeLogger = zap.NewNop().Sugar()
		ctx = context.Background()
		fakeErr = errors.New("fake error")

		walletId = uuid.New()
		wallet = ledger.Wallet{
			ID:          walletId,
			OwnerUserID: "user-1",
			Type:        ledger.WalletTypeMain,
			Balance:     decimal.NewFromInt(100),
			Currency:    "USD",
		}
		fakeStore.GetWalletReturns(wallet, nil)
		fakeStore.AppendStub = func(_ context.Context, tx ledger.Transaction) (ledger.Transaction, error) {
			return tx, nil
		}

		engine = ledger.NewEngine(fakeLogger, fakeStore, fakeInvoices)
	})

	Describe("CreateWallet", func() {
		var (
			created ledger.Wallet
			err     error
		)

		BeforeEach(func() {
			fakeStore.GetMainWalletReturns(ledger.Wallet{}, ledger.ErrWalletNotFound)
			fakeStore.CreateWalletStub = func(_ context.Context, w ledger.Wallet) (ledger.Wallet, error) {
				return w, nil
			}
		})

		JustBeforeEach(func() {
			created, err = engine.CreateWallet(ctx, "user-1", "USD")
		})

		When("no wallet exists for the user and currency", func() {
			It("should create a zero-balance main wallet", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(created.OwnerUserID).To(Equal("user-1"))
				Expect(created.Type).To(Equal(ledger.WalletTypeMain))
				Expect(created.Currency).To(Equal("USD"))
				Expect(created.Balance.IsZero()).To(BeTrue())
				Expect(fakeStore.CreateWalletCallCount()).To(Equal(1))
			})
		})

		When("a wallet already exists for the user and currency", func() {
			BeforeEach(func() {
				fakeStore.GetMainWalletReturns(wallet, nil)
			})

			It("should return ErrWalletExists", func() {
				Expect(err).To(MatchError(ledger.ErrWalletExists))
				Expect(fakeStore.CreateWalletCallCount()).To(Equal(0))
			})
		})

		When("the store fails", func() {
			BeforeEach(func() {
				fakeStore.CreateWalletStub = nil
				fakeStore.CreateWalletReturns(ledger.Wallet{}, fakeErr)
			})

			It("should return an error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("Deposit", func() {
		var (
			params ledger.DepositParams
			tx     ledger.Transaction
			err    error
		)

		BeforeEach(func() {
			params = ledger.DepositParams{
				WalletID: walletId,
				Amount:   decimal.NewFromInt(25),
				Currency: "USD",
			}
		})

		JustBeforeEach(func() {
			tx, err = engine.Deposit(ctx, params)
		})

		When("the deposit is valid", func() {
			It("should append a completed deposit record", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(fakeStore.AppendCallCount()).To(Equal(1))
				_, appended := fakeStore.AppendArgsForCall(0)
				Expect(appended.Type).To(Equal(ledger.TxTypeDeposit))
				Expect(appended.Status).To(Equal(ledger.TxStatusCompleted))
				Expect(appended.FromWalletID).To(BeNil())
				Expect(*appended.ToWalletID).To(Equal(walletId))
				Expect(appended.Amount).To(Equal(params.Amount))
				Expect(tx.Amount).To(Equal(params.Amount))
			})
		})

		When("the amount is zero", func() {
			BeforeEach(func() {
				params.Amount = decimal.Zero
			})

			It("should return ErrInvalidAmount", func() {
				Expect(err).To(MatchError(ledger.ErrInvalidAmount))
				Expect(fakeStore.AppendCallCount()).To(Equal(0))
			})
		})

		When("the amount is negative", func() {
			BeforeEach(func() {
				params.Amount = decimal.NewFromInt(-5)
			})

			It("should return ErrInvalidAmount", func() {
				Expect(err).To(MatchError(ledger.ErrInvalidAmount))
			})
		})

		When("the currency does not match the wallet", func() {
			BeforeEach(func() {
				params.Currency = "EUR"
			})

			It("should return ErrCurrencyMismatch", func() {
				Expect(err).To(MatchError(ledger.ErrCurrencyMismatch))
				Expect(fakeStore.AppendCallCount()).To(Equal(0))
			})
		})

		When("the idempotency key was already used", func() {
			var recorded ledger.Transaction

			BeforeEach(func() {
				recorded = ledger.Transaction{
					ID:     uuid.New(),
					Type:   ledger.TxTypeDeposit,
					Amount: decimal.NewFromInt(25),
				}
				params.IdempotencyKey = "dep-1"
				fakeStore.FindByIdempotencyKeyReturns(recorded, true, nil)
			})

			It("should replay the recorded transaction without applying again", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(tx.ID).To(Equal(recorded.ID))
				Expect(fakeStore.AppendCallCount()).To(Equal(0))
				_, key := fakeStore.FindByIdempotencyKeyArgsForCall(0)
				Expect(key).To(Equal("dep-1"))
			})
		})

		When("the idempotency lookup fails", func() {
			BeforeEach(func() {
				params.IdempotencyKey = "dep-1"
				fakeStore.FindByIdempotencyKeyReturns(ledger.Transaction{}, false, fakeErr)
			})

			It("should return an error", func() {
				Expect(err).To(MatchError(fakeErr))
				Expect(fakeStore.AppendCallCount()).To(Equal(0))
			})
		})
	})

	Describe("Withdraw", func() {
		var (
			params ledger.WithdrawParams
			err    error
		)

		BeforeEach(func() {
			params = ledger.WithdrawParams{
				WalletID: walletId,
				Amount:   decimal.NewFromInt(40),
				Currency: "USD",
			}
		})

		JustBeforeEach(func() {
			_, err = engine.Withdraw(ctx, params)
		})

		When("the withdrawal is valid", func() {
			It("should append a completed withdrawal record", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(fakeStore.AppendCallCount()).To(Equal(1))
				_, appended := fakeStore.AppendArgsForCall(0)
				Expect(appended.Type).To(Equal(ledger.TxTypeWithdrawal))
				Expect(*appended.FromWalletID).To(Equal(walletId))
				Expect(appended.ToWalletID).To(BeNil())
			})
		})

		When("the store rejects the withdrawal", func() {
			BeforeEach(func() {
				fakeStore.AppendStub = nil
				fakeStore.AppendReturns(ledger.Transaction{}, ledger.ErrInsufficientFunds)
			})

			It("should surface ErrInsufficientFunds", func() {
				Expect(err).To(MatchError(ledger.ErrInsufficientFunds))
			})
		})
	})

	Describe("Transfer", func() {
		var (
			params ledger.TransferParams
			toId   uuid.UUID
			err    error
		)

		BeforeEach(func() {
			toId = uuid.New()
			params = ledger.TransferParams{
				FromWalletID: walletId,
				ToWalletID:   toId,
				Amount:       decimal.NewFromInt(10),
				Currency:     "USD",
			}
			fakeStore.GetWalletStub = func(_ context.Context, id uuid.UUID) (ledger.Wallet, error) {
				w := wallet
				w.ID = id
				return w, nil
			}
		})

		JustBeforeEach(func() {
			_, err = engine.Transfer(ctx, params)
		})

		When("the transfer is valid", func() {
			It("should append a single record carrying both wallets", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(fakeStore.AppendCallCount()).To(Equal(1))
				_, appended := fakeStore.AppendArgsForCall(0)
				Expect(appended.Type).To(Equal(ledger.TxTypeTransfer))
				Expect(*appended.FromWalletID).To(Equal(walletId))
				Expect(*appended.ToWalletID).To(Equal(toId))
			})
		})

		When("source and destination are the same wallet", func() {
			BeforeEach(func() {
				params.ToWalletID = walletId
			})

			It("should return ErrSameWallet", func() {
				Expect(err).To(MatchError(ledger.ErrSameWallet))
				Expect(fakeStore.AppendCallCount()).To(Equal(0))
			})
		})

		When("the destination wallet holds another currency", func() {
			BeforeEach(func() {
				fakeStore.GetWalletStub = func(_ context.Context, id uuid.UUID) (ledger.Wallet, error) {
					w := wallet
					w.ID = id
					if id == toId {
						w.Currency = "EUR"
					}
					return w, nil
				}
			})

			It("should return ErrCurrencyMismatch", func() {
				Expect(err).To(MatchError(ledger.ErrCurrencyMismatch))
			})
		})

		When("the source wallet does not exist", func() {
			BeforeEach(func() {
				fakeStore.GetWalletStub = nil
				fakeStore.GetWalletReturns(ledger.Wallet{}, ledger.ErrWalletNotFound)
			})

			It("should return ErrWalletNotFound", func() {
				Expect(err).To(MatchError(ledger.ErrWalletNotFound))
			})
		})
	})

	Describe("PayInvoice", func() {
		var (
			params       ledger.PayInvoiceParams
			sellerWallet ledger.Wallet
			inv          invoice.Invoice
			tx           ledger.Transaction
			err          error
		)

		BeforeEach(func() {
			sellerWallet = ledger.Wallet{
				ID:          uuid.New(),
				OwnerUserID: "seller-1",
				Type:        ledger.WalletTypeMain,
				Currency:    "USD",
			}
			inv = invoice.Invoice{
				ID:           "inv-1",
				SellerUserID: "seller-1",
				BuyerUserID:  "user-1",
				Amount:       decimal.NewFromInt(75),
				Currency:     "USD",
				Status:       invoice.StatusIssued,
			}
			params = ledger.PayInvoiceParams{
				InvoiceID:    "inv-1",
				FromWalletID: walletId,
			}

			fakeInvoices.GetReturns(inv, nil)
			fakeInvoices.MarkPaidReturns(nil)
			fakeStore.GetMainWalletReturns(sellerWallet, nil)
			fakeStore.GetWalletStub = func(_ context.Context, id uuid.UUID) (ledger.Wallet, error) {
				if id == sellerWallet.ID {
					return sellerWallet, nil
				}
				return wallet, nil
			}
		})

		JustBeforeEach(func() {
			tx, err = engine.PayInvoice(ctx, params)
		})

		When("the invoice is open", func() {
			It("should transfer the invoice amount to the seller's wallet", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(fakeStore.AppendCallCount()).To(Equal(1))
				_, appended := fakeStore.AppendArgsForCall(0)
				Expect(*appended.FromWalletID).To(Equal(walletId))
				Expect(*appended.ToWalletID).To(Equal(sellerWallet.ID))
				Expect(appended.Amount).To(Equal(inv.Amount))
				Expect(appended.Metadata).To(HaveKeyWithValue(ledger.MetadataKeyInvoiceID, "inv-1"))
			})

			It("should mark the invoice paid", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(fakeInvoices.MarkPaidCallCount()).To(Equal(1))
				_, invoiceId := fakeInvoices.MarkPaidArgsForCall(0)
				Expect(invoiceId).To(Equal("inv-1"))
			})
		})

		When("the invoice is already paid", func() {
			BeforeEach(func() {
				inv.Status = invoice.StatusPaid
				fakeInvoices.GetReturns(inv, nil)
			})

			It("should return ErrInvoiceAlreadyPaid", func() {
				Expect(err).To(MatchError(ledger.ErrInvoiceAlreadyPaid))
				Expect(fakeStore.AppendCallCount()).To(Equal(0))
				Expect(fakeInvoices.MarkPaidCallCount()).To(Equal(0))
			})
		})

		When("the transfer commits but the status update fails", func() {
			BeforeEach(func() {
				fakeInvoices.MarkPaidReturns(fakeErr)
			})

			It("should return the committed transaction together with the error", func() {
				Expect(err).To(MatchError(fakeErr))
				Expect(tx.ID).NotTo(Equal(uuid.Nil))
				Expect(fakeStore.AppendCallCount()).To(Equal(1))
			})
		})

		When("the invoice does not exist", func() {
			BeforeEach(func() {
				fakeInvoices.GetReturns(invoice.Invoice{}, invoice.ErrInvoiceNotFound)
			})

			It("should return an error", func() {
				Expect(err).To(MatchError(invoice.ErrInvoiceNotFound))
				Expect(fakeStore.AppendCallCount()).To(Equal(0))
			})
		})
	})

	Describe("EscrowLock", func() {
		var (
			params ledger.EscrowLockParams
			toId   uuid.UUID
			err    error
		)

		BeforeEach(func() {
			toId = uuid.New()
			params = ledger.EscrowLockParams{
				ContractID:   "ct-1",
				FromWalletID: walletId,
				ToWalletID:   toId,
				Amount:       decimal.NewFromInt(50),
				Currency:     "USD",
			}
			fakeStore.GetWalletStub = func(_ context.Context, id uuid.UUID) (ledger.Wallet, error) {
				w := wallet
				w.ID = id
				return w, nil
			}
		})

		JustBeforeEach(func() {
			_, err = engine.EscrowLock(ctx, params)
		})

		When("the lock is valid", func() {
			It("should append an escrow_lock record tagged with the contract", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(fakeStore.AppendCallCount()).To(Equal(1))
				_, appended := fakeStore.AppendArgsForCall(0)
				Expect(appended.Type).To(Equal(ledger.TxTypeEscrowLock))
				Expect(*appended.ContractID).To(Equal("ct-1"))
			})
		})
	})
})
