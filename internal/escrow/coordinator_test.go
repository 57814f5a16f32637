package escrow_test

import (
	"context"
	"errors"

	"finledger/internal/contract"
	"finledger/internal/escrow"
	"finledger/internal/escrow/fake"
	"finledger/internal/ledger"

	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var _ = Describe("Coordinator", func() {
	var (
		coordinator   *escrow.Coordinator
		fakeLedger    *fake.Ledger
		fakeStore     *fake.Store
		fakeContracts *fake.Contracts
		fakeLogger    *zap.SugaredLogger
		ctx           context.Context
		fakeErr       error

		tradeContract contract.Contract
		escrowWallet  ledger.Wallet
		sellerWallet  ledger.Wallet
	)

	BeforeEach(func() {
		fakeLedger = new(fake.Ledger)
		fakeStore = new(fake.Store)
		fakeContracts = new(fake.Contracts)
		fakeLogger = zap.NewNop().Sugar()
		ctx = context.Background()
		fakeErr = errors.New("fake error")

		contractId := "ct-1"
		tradeContract = contract.Contract{
			ID:           contractId,
			BuyerUserID:  "buyer-1",
			SellerUserID: "seller-1",
			Amount:       decimal.NewFromInt(500),
			Currency:     "USD",
			Status:       contract.StatusActive,
		}
		escrowWallet = ledger.Wallet{
			ID:          uuid.New(),
			OwnerUserID: contractId,
			Type:        ledger.WalletTypeEscrow,
			ContractID:  &contractId,
			Balance:     decimal.NewFromInt(500),
			Currency:    "USD",
		}
		sellerWallet = ledger.Wallet{
			ID:          uuid.New(),
			OwnerUserID: "seller-1",
			Type:        ledger.WalletTypeMain,
			Currency:    "USD",
		}

		fakeContracts.GetReturns(tradeContract, nil)
		fakeStore.GetEscrowWalletReturns(escrowWallet, nil)
		fakeStore.GetMainWalletReturns(sellerWallet, nil)
		fakeLedger.EscrowLockStub = func(_ context.Context, p ledger.EscrowLockParams) (ledger.Transaction, error) {
			return ledger.Transaction{
				ID:         uuid.New(),
				Type:       ledger.TxTypeEscrowLock,
				Amount:     p.Amount,
				Currency:   p.Currency,
				Status:     ledger.TxStatusCompleted,
				ContractID: &p.ContractID,
			}, nil
		}
		fakeLedger.EscrowReleaseStub = func(_ context.Context, p ledger.EscrowReleaseParams) (ledger.Transaction, error) {
			return ledger.Transaction{
				ID:         uuid.New(),
				Type:       ledger.TxTypeEscrowRelease,
				Amount:     p.Amount,
				Currency:   p.Currency,
				Status:     ledger.TxStatusCompleted,
				ContractID: &p.ContractID,
			}, nil
		}

		coordinator = escrow.NewCoordinator(fakeLogger, fakeLedger, fakeStore, fakeContracts)
	})

	Describe("Fund", func() {
		var (
			fromWalletId uuid.UUID
			tx           ledger.Transaction
			err          error
		)

		BeforeEach(func() {
			fromWalletId = uuid.New()
		})

		JustBeforeEach(func() {
			tx, err = coordinator.Fund(ctx, "ct-1", fromWalletId, "")
		})

		When("the escrow wallet already exists", func() {
			It("should lock the contract's full amount", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(fakeStore.CreateWalletCallCount()).To(Equal(0))
				Expect(fakeLedger.EscrowLockCallCount()).To(Equal(1))
				_, lock := fakeLedger.EscrowLockArgsForCall(0)
				Expect(lock.ContractID).To(Equal("ct-1"))
				Expect(lock.FromWalletID).To(Equal(fromWalletId))
				Expect(lock.ToWalletID).To(Equal(escrowWallet.ID))
				Expect(lock.Amount).To(Equal(tradeContract.Amount))
				Expect(tx.Type).To(Equal(ledger.TxTypeEscrowLock))
			})
		})

		When("the contract has no escrow wallet yet", func() {
			BeforeEach(func() {
				fakeStore.GetEscrowWalletReturns(ledger.Wallet{}, ledger.ErrWalletNotFound)
				fakeStore.CreateWalletStub = func(_ context.Context, w ledger.Wallet) (ledger.Wallet, error) {
					return w, nil
				}
			})

			It("should create a contract-owned escrow wallet first", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(fakeStore.CreateWalletCallCount()).To(Equal(1))
				_, created := fakeStore.CreateWalletArgsForCall(0)
				Expect(created.Type).To(Equal(ledger.WalletTypeEscrow))
				Expect(created.OwnerUserID).To(Equal("ct-1"))
				Expect(*created.ContractID).To(Equal("ct-1"))
				Expect(created.Currency).To(Equal("USD"))
				Expect(created.Balance.IsZero()).To(BeTrue())

				_, lock := fakeLedger.EscrowLockArgsForCall(0)
				Expect(lock.ToWalletID).To(Equal(created.ID))
			})
		})

		When("the contract does not exist", func() {
			BeforeEach(func() {
				fakeContracts.GetReturns(contract.Contract{}, contract.ErrContractNotFound)
			})

			It("should return an error", func() {
				Expect(err).To(MatchError(contract.ErrContractNotFound))
				Expect(fakeLedger.EscrowLockCallCount()).To(Equal(0))
			})
		})

		When("the payer cannot cover the amount", func() {
			BeforeEach(func() {
				fakeLedger.EscrowLockStub = nil
				fakeLedger.EscrowLockReturns(ledger.Transaction{}, ledger.ErrInsufficientFunds)
			})

			It("should surface ErrInsufficientFunds", func() {
				Expect(err).To(MatchError(ledger.ErrInsufficientFunds))
			})
		})
	})

	Describe("Release", func() {
		var (
			params escrow.ReleaseParams
			tx     ledger.Transaction
			err    error
		)

		BeforeEach(func() {
			params = escrow.ReleaseParams{
				ContractID:  "ct-1",
				Beneficiary: escrow.BeneficiarySeller,
				Amount:      decimal.NewFromInt(200),
			}
		})

		JustBeforeEach(func() {
			tx, err = coordinator.Release(ctx, params)
		})

		When("a partial amount is released to the seller", func() {
			It("should move funds from escrow to the seller's main wallet", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(fakeLedger.EscrowReleaseCallCount()).To(Equal(1))
				_, release := fakeLedger.EscrowReleaseArgsForCall(0)
				Expect(release.FromWalletID).To(Equal(escrowWallet.ID))
				Expect(release.ToWalletID).To(Equal(sellerWallet.ID))
				Expect(release.Amount).To(Equal(params.Amount))

				_, userId, currency := fakeStore.GetMainWalletArgsForCall(0)
				Expect(userId).To(Equal("seller-1"))
				Expect(currency).To(Equal("USD"))
			})

			It("should not settle the contract", func() {
				Expect(fakeContracts.MarkSettledCallCount()).To(Equal(0))
			})
		})

		When("the buyer is refunded", func() {
			BeforeEach(func() {
				params.Beneficiary = escrow.BeneficiaryBuyer
			})

			It("should resolve the buyer's main wallet", func() {
				Expect(err).NotTo(HaveOccurred())
				_, userId, _ := fakeStore.GetMainWalletArgsForCall(0)
				Expect(userId).To(Equal("buyer-1"))
			})
		})

		When("the full balance is released", func() {
			BeforeEach(func() {
				params.Amount = escrowWallet.Balance
			})

			It("should succeed", func() {
				Expect(err).NotTo(HaveOccurred())
				_, release := fakeLedger.EscrowReleaseArgsForCall(0)
				Expect(release.Amount).To(Equal(escrowWallet.Balance))
			})

			It("should settle the contract", func() {
				Expect(fakeContracts.MarkSettledCallCount()).To(Equal(1))
				_, contractId := fakeContracts.MarkSettledArgsForCall(0)
				Expect(contractId).To(Equal("ct-1"))
			})
		})

		When("settling the contract fails after a draining release", func() {
			BeforeEach(func() {
				params.Amount = escrowWallet.Balance
				fakeLedger.EscrowReleaseReturns(ledger.Transaction{ID: uuid.New(), Amount: escrowWallet.Balance}, nil)
				fakeContracts.MarkSettledReturns(fakeErr)
			})

			It("should return the committed transaction together with the error", func() {
				Expect(err).To(MatchError(fakeErr))
				Expect(tx.Amount).To(Equal(escrowWallet.Balance))
			})
		})

		When("a concurrent release drains the escrow first", func() {
			BeforeEach(func() {
				fakeLedger.EscrowReleaseReturns(ledger.Transaction{}, ledger.ErrInsufficientFunds)
			})

			It("should return ErrOverRelease", func() {
				Expect(err).To(MatchError(escrow.ErrOverRelease))
				Expect(fakeContracts.MarkSettledCallCount()).To(Equal(0))
			})
		})

		When("the amount exceeds the escrow balance", func() {
			BeforeEach(func() {
				params.Amount = decimal.NewFromInt(501)
			})

			It("should return ErrOverRelease", func() {
				Expect(err).To(MatchError(escrow.ErrOverRelease))
				Expect(fakeLedger.EscrowReleaseCallCount()).To(Equal(0))
			})
		})

		When("the escrow was never funded", func() {
			BeforeEach(func() {
				fakeStore.GetEscrowWalletReturns(ledger.Wallet{}, ledger.ErrWalletNotFound)
			})

			It("should return ErrEscrowNotFunded", func() {
				Expect(err).To(MatchError(escrow.ErrEscrowNotFunded))
			})
		})

		When("the escrow balance is already zero", func() {
			BeforeEach(func() {
				drained := escrowWallet
				drained.Balance = decimal.Zero
				fakeStore.GetEscrowWalletReturns(drained, nil)
			})

			It("should return ErrEscrowNotFunded", func() {
				Expect(err).To(MatchError(escrow.ErrEscrowNotFunded))
			})
		})

		When("the beneficiary name is unknown", func() {
			BeforeEach(func() {
				params.Beneficiary = "arbiter"
			})

			It("should return ErrUnknownBeneficiary", func() {
				Expect(err).To(MatchError(escrow.ErrUnknownBeneficiary))
			})
		})

		When("the target wallet does not belong to the beneficiary", func() {
			BeforeEach(func() {
				other := uuid.New()
				params.ToWalletID = &other
			})

			It("should return ErrNotBeneficiary", func() {
				Expect(err).To(MatchError(escrow.ErrNotBeneficiary))
				Expect(fakeLedger.EscrowReleaseCallCount()).To(Equal(0))
			})
		})

		When("the amount is not positive", func() {
			BeforeEach(func() {
				params.Amount = decimal.Zero
			})

			It("should return ErrInvalidAmount", func() {
				Expect(err).To(MatchError(ledger.ErrInvalidAmount))
				Expect(fakeContracts.GetCallCount()).To(Equal(0))
			})
		})
	})

	Describe("Status", func() {
		var (
			status escrow.Status
			err    error
		)

		JustBeforeEach(func() {
			status, err = coordinator.Status(ctx, "ct-1")
		})

		When("the escrow holds the full amount", func() {
			BeforeEach(func() {
				fakeStore.HistoryReturns([]ledger.Transaction{
					{Type: ledger.TxTypeEscrowLock, Status: ledger.TxStatusCompleted},
				}, nil)
			})

			It("should report funded", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(status.State).To(Equal(escrow.StateFunded))
				Expect(status.Balance).To(Equal(escrowWallet.Balance))
				Expect(*status.WalletID).To(Equal(escrowWallet.ID))
			})
		})

		When("part of the balance has been released", func() {
			BeforeEach(func() {
				partial := escrowWallet
				partial.Balance = decimal.NewFromInt(300)
				fakeStore.GetEscrowWalletReturns(partial, nil)
				fakeStore.HistoryReturns([]ledger.Transaction{
					{Type: ledger.TxTypeEscrowLock, Status: ledger.TxStatusCompleted},
					{Type: ledger.TxTypeEscrowRelease, Status: ledger.TxStatusCompleted},
				}, nil)
			})

			It("should report partially_released", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(status.State).To(Equal(escrow.StatePartiallyReleased))
			})
		})

		When("the balance is back to zero after releases", func() {
			BeforeEach(func() {
				drained := escrowWallet
				drained.Balance = decimal.Zero
				fakeStore.GetEscrowWalletReturns(drained, nil)
				fakeStore.HistoryReturns([]ledger.Transaction{
					{Type: ledger.TxTypeEscrowLock, Status: ledger.TxStatusCompleted},
					{Type: ledger.TxTypeEscrowRelease, Status: ledger.TxStatusCompleted},
				}, nil)
			})

			It("should report settled", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(status.State).To(Equal(escrow.StateSettled))
			})
		})

		When("the escrow is re-funded after a settled cycle", func() {
			BeforeEach(func() {
				payerId := uuid.New()
				fakeStore.HistoryReturns([]ledger.Transaction{
					{Type: ledger.TxTypeEscrowLock, Status: ledger.TxStatusCompleted, FromWalletID: &payerId, ToWalletID: &escrowWallet.ID, Amount: decimal.NewFromInt(500)},
					{Type: ledger.TxTypeEscrowRelease, Status: ledger.TxStatusCompleted, FromWalletID: &escrowWallet.ID, ToWalletID: &payerId, Amount: decimal.NewFromInt(500)},
					{Type: ledger.TxTypeEscrowLock, Status: ledger.TxStatusCompleted, FromWalletID: &payerId, ToWalletID: &escrowWallet.ID, Amount: decimal.NewFromInt(500)},
				}, nil)
			})

			It("should report funded, not partially_released", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(status.State).To(Equal(escrow.StateFunded))
			})
		})

		When("no escrow wallet exists", func() {
			BeforeEach(func() {
				fakeStore.GetEscrowWalletReturns(ledger.Wallet{}, ledger.ErrWalletNotFound)
			})

			It("should report unfunded with a zero balance", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(status.State).To(Equal(escrow.StateUnfunded))
				Expect(status.Balance.IsZero()).To(BeTrue())
				Expect(status.WalletID).To(BeNil())
			})
		})

		When("the history lookup fails", func() {
			BeforeEach(func() {
				fakeStore.HistoryReturns(nil, fakeErr)
			})

			It("should return an error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})
})
