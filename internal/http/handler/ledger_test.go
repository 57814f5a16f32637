package handler_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"

	"finledger/internal/escrow"
	"finledger/internal/http/handler"
	"finledger/internal/http/handler/fake"
	"finledger/internal/ledger"

	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var _ = Describe("LedgerHandler", func() {
	var (
		lh            *handler.LedgerHandler
		fakeLedger    *fake.LedgerService
		fakeEscrow    *fake.EscrowService
		fakeValidator *fake.RequestValidator
		fakeLogger    *zap.SugaredLogger
		w             *httptest.ResponseRecorder
		req           *http.Request
		fakeErr       error

		walletId uuid.UUID
		response handler.Response
	)

	decodeResponse := func() {
		Expect(json.NewDecoder(w.Body).Decode(&response)).To(Succeed())
	}

	BeforeEach(func() {
		fakeLedger = new(fake.LedgerService)
		fakeEscrow = new(fake.EscrowService)
		fakeValidator = new(fake.RequestValidator)
		fakeLogger = zap.NewNop().Sugar()
		fakeErr = errors.New("fake error")
		walletId = uuid.New()
		response = handler.Response{}

		fakeValidator.DecodeAndValidateJSONPayloadStub = func(rec *http.Request, jsonPayload any) error {
			return json.NewDecoder(rec.Body).Decode(jsonPayload)
		}

		w = httptest.NewRecorder()
		lh = handler.NewLedgerHandler(fakeLogger, fakeValidator, fakeLedger, fakeEscrow)
	})

	Describe("HandleCreateWallet", func() {
		BeforeEach(func() {
			body := strings.NewReader(`{"owner_user_id":"user-1","currency":"USD"}`)
			req = httptest.NewRequest("POST", "/wallets", body)
			req.Header.Set("Content-Type", "application/json")
		})

		JustBeforeEach(func() {
			lh.HandleCreateWallet(w, req)
		})

		When("the wallet is created", func() {
			BeforeEach(func() {
				fakeLedger.CreateWalletReturns(ledger.Wallet{
					ID:          walletId,
					OwnerUserID: "user-1",
					Type:        ledger.WalletTypeMain,
					Currency:    "USD",
				}, nil)
			})

			It("should return 201 with the wallet", func() {
				Expect(w.Code).To(Equal(http.StatusCreated))
				Expect(fakeLedger.CreateWalletCallCount()).To(Equal(1))
				_, ownerUserId, currency := fakeLedger.CreateWalletArgsForCall(0)
				Expect(ownerUserId).To(Equal("user-1"))
				Expect(currency).To(Equal("USD"))
				Expect(w.Body.String()).To(ContainSubstring(walletId.String()))
			})
		})

		When("the payload is invalid", func() {
			BeforeEach(func() {
				fakeValidator.DecodeAndValidateJSONPayloadStub = nil
				fakeValidator.DecodeAndValidateJSONPayloadReturns(fakeErr)
			})

			It("should return 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(w.Body.String()).To(ContainSubstring(fakeErr.Error()))
				Expect(fakeLedger.CreateWalletCallCount()).To(Equal(0))
			})
		})

		When("a wallet already exists for the user and currency", func() {
			BeforeEach(func() {
				fakeLedger.CreateWalletReturns(ledger.Wallet{}, ledger.ErrWalletExists)
			})

			It("should return 422 naming the violated rule", func() {
				Expect(w.Code).To(Equal(http.StatusUnprocessableEntity))
				decodeResponse()
				Expect(response.Error).To(Equal(ledger.ErrWalletExists.Error()))
			})
		})
	})

	Describe("HandleDeposit", func() {
		BeforeEach(func() {
			body := strings.NewReader(`{"amount":"25","currency":"USD"}`)
			req = httptest.NewRequest("POST", "/wallets/"+walletId.String()+"/deposit", body)
			req.SetPathValue("id", walletId.String())
		})

		JustBeforeEach(func() {
			lh.HandleDeposit(w, req)
		})

		When("the deposit succeeds", func() {
			BeforeEach(func() {
				fakeLedger.DepositReturns(ledger.Transaction{
					ID:     uuid.New(),
					Amount: decimal.NewFromInt(25),
					Type:   ledger.TxTypeDeposit,
					Status: ledger.TxStatusCompleted,
				}, nil)
			})

			It("should return 201 with the transaction", func() {
				Expect(w.Code).To(Equal(http.StatusCreated))
				Expect(fakeLedger.DepositCallCount()).To(Equal(1))
				_, params := fakeLedger.DepositArgsForCall(0)
				Expect(params.WalletID).To(Equal(walletId))
				Expect(params.Amount.String()).To(Equal("25"))
				Expect(params.Currency).To(Equal("USD"))
			})
		})

		When("the wallet id is not a uuid", func() {
			BeforeEach(func() {
				req.SetPathValue("id", "not-a-uuid")
			})

			It("should return 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(fakeLedger.DepositCallCount()).To(Equal(0))
			})
		})

		When("the wallet does not exist", func() {
			BeforeEach(func() {
				fakeLedger.DepositReturns(ledger.Transaction{}, ledger.ErrWalletNotFound)
			})

			It("should return 404", func() {
				Expect(w.Code).To(Equal(http.StatusNotFound))
			})
		})

		When("the service fails unexpectedly", func() {
			BeforeEach(func() {
				fakeLedger.DepositReturns(ledger.Transaction{}, fakeErr)
			})

			It("should return 500 with a generic error", func() {
				Expect(w.Code).To(Equal(http.StatusInternalServerError))
				decodeResponse()
				Expect(response.Error).To(Equal("unexpected error occurred"))
			})
		})
	})

	Describe("HandleTransfer", func() {
		var toId uuid.UUID

		BeforeEach(func() {
			toId = uuid.New()
			body := strings.NewReader(`{"amount":"10","currency":"USD"}`)
			req = httptest.NewRequest("POST", "/wallets/"+walletId.String()+"/transfer/"+toId.String(), body)
			req.SetPathValue("from", walletId.String())
			req.SetPathValue("to", toId.String())
		})

		JustBeforeEach(func() {
			lh.HandleTransfer(w, req)
		})

		When("the transfer succeeds", func() {
			BeforeEach(func() {
				fakeLedger.TransferReturns(ledger.Transaction{
					ID:     uuid.New(),
					Amount: decimal.NewFromInt(10),
					Type:   ledger.TxTypeTransfer,
					Status: ledger.TxStatusCompleted,
				}, nil)
			})

			It("should pass both wallet ids to the service", func() {
				Expect(w.Code).To(Equal(http.StatusCreated))
				_, params := fakeLedger.TransferArgsForCall(0)
				Expect(params.FromWalletID).To(Equal(walletId))
				Expect(params.ToWalletID).To(Equal(toId))
			})
		})

		When("the source cannot cover the amount", func() {
			BeforeEach(func() {
				fakeLedger.TransferReturns(ledger.Transaction{}, ledger.ErrInsufficientFunds)
			})

			It("should return 422", func() {
				Expect(w.Code).To(Equal(http.StatusUnprocessableEntity))
				decodeResponse()
				Expect(response.Error).To(Equal(ledger.ErrInsufficientFunds.Error()))
			})
		})
	})

	Describe("HandleFundEscrow", func() {
		var fromId uuid.UUID

		BeforeEach(func() {
			fromId = uuid.New()
			body := strings.NewReader(`{"from_wallet_id":"` + fromId.String() + `"}`)
			req = httptest.NewRequest("POST", "/contracts/ct-1/fund", body)
			req.SetPathValue("id", "ct-1")
		})

		JustBeforeEach(func() {
			lh.HandleFundEscrow(w, req)
		})

		When("funding succeeds", func() {
			BeforeEach(func() {
				fakeEscrow.FundReturns(ledger.Transaction{
					ID:     uuid.New(),
					Type:   ledger.TxTypeEscrowLock,
					Status: ledger.TxStatusCompleted,
				}, nil)
			})

			It("should return 201", func() {
				Expect(w.Code).To(Equal(http.StatusCreated))
				_, contractId, fromWalletId, _ := fakeEscrow.FundArgsForCall(0)
				Expect(contractId).To(Equal("ct-1"))
				Expect(fromWalletId).To(Equal(fromId))
			})
		})

		When("the payer cannot cover the contract amount", func() {
			BeforeEach(func() {
				fakeEscrow.FundReturns(ledger.Transaction{}, ledger.ErrInsufficientFunds)
			})

			It("should return 422", func() {
				Expect(w.Code).To(Equal(http.StatusUnprocessableEntity))
			})
		})
	})

	Describe("HandleReleaseEscrow", func() {
		BeforeEach(func() {
			body := strings.NewReader(`{"type":"seller","amount":"200"}`)
			req = httptest.NewRequest("POST", "/contracts/ct-1/release", body)
			req.SetPathValue("id", "ct-1")
		})

		JustBeforeEach(func() {
			lh.HandleReleaseEscrow(w, req)
		})

		When("the release succeeds", func() {
			BeforeEach(func() {
				fakeEscrow.ReleaseReturns(ledger.Transaction{
					ID:     uuid.New(),
					Type:   ledger.TxTypeEscrowRelease,
					Status: ledger.TxStatusCompleted,
				}, nil)
			})

			It("should forward beneficiary and amount", func() {
				Expect(w.Code).To(Equal(http.StatusCreated))
				_, params := fakeEscrow.ReleaseArgsForCall(0)
				Expect(params.ContractID).To(Equal("ct-1"))
				Expect(params.Beneficiary).To(Equal(escrow.BeneficiarySeller))
				Expect(params.Amount.String()).To(Equal("200"))
				Expect(params.ToWalletID).To(BeNil())
			})
		})

		When("the amount exceeds the escrow balance", func() {
			BeforeEach(func() {
				fakeEscrow.ReleaseReturns(ledger.Transaction{}, escrow.ErrOverRelease)
			})

			It("should return 422 naming the violated rule", func() {
				Expect(w.Code).To(Equal(http.StatusUnprocessableEntity))
				decodeResponse()
				Expect(response.Error).To(Equal(escrow.ErrOverRelease.Error()))
			})
		})

		When("the escrow is unfunded", func() {
			BeforeEach(func() {
				fakeEscrow.ReleaseReturns(ledger.Transaction{}, escrow.ErrEscrowNotFunded)
			})

			It("should return 422", func() {
				Expect(w.Code).To(Equal(http.StatusUnprocessableEntity))
			})
		})
	})

	Describe("HandleEscrowStatus", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("GET", "/contracts/ct-1/escrow", nil)
			req.SetPathValue("id", "ct-1")
		})

		JustBeforeEach(func() {
			lh.HandleEscrowStatus(w, req)
		})

		When("the escrow is funded", func() {
			BeforeEach(func() {
				escrowWalletId := uuid.New()
				fakeEscrow.StatusReturns(escrow.Status{
					ContractID: "ct-1",
					WalletID:   &escrowWalletId,
					State:      escrow.StateFunded,
					Balance:    decimal.NewFromInt(500),
					Currency:   "USD",
				}, nil)
			})

			It("should return 200 with the state", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				Expect(w.Body.String()).To(ContainSubstring("funded"))
				Expect(w.Body.String()).To(ContainSubstring("500"))
			})
		})
	})

	Describe("HandleUserHistory", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("GET", "/users/user-1/transactions", nil)
			req.SetPathValue("id", "user-1")
		})

		JustBeforeEach(func() {
			lh.HandleUserHistory(w, req)
		})

		When("the user has transactions", func() {
			BeforeEach(func() {
				fakeLedger.HistoryByUserReturns([]ledger.Transaction{
					{ID: uuid.New(), Amount: decimal.NewFromInt(100), Currency: "USD", Type: ledger.TxTypeDeposit, Status: ledger.TxStatusCompleted},
					{ID: uuid.New(), Amount: decimal.NewFromInt(40), Currency: "EUR", Type: ledger.TxTypeDeposit, Status: ledger.TxStatusCompleted},
				}, nil)
			})

			It("should return 200 with all transactions", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				Expect(fakeLedger.HistoryByUserCallCount()).To(Equal(1))
				_, userId := fakeLedger.HistoryByUserArgsForCall(0)
				Expect(userId).To(Equal("user-1"))
				Expect(w.Body.String()).To(ContainSubstring("100"))
				Expect(w.Body.String()).To(ContainSubstring("EUR"))
			})
		})

		When("the store lookup fails", func() {
			BeforeEach(func() {
				fakeLedger.HistoryByUserReturns(nil, errors.New("boom"))
			})

			It("should return 500 with a generic error", func() {
				Expect(w.Code).To(Equal(http.StatusInternalServerError))
				Expect(w.Body.String()).To(ContainSubstring("unexpected error occurred"))
			})
		})
	})

	Describe("HandlePayInvoice", func() {
		var fromId uuid.UUID

		BeforeEach(func() {
			fromId = uuid.New()
			body := strings.NewReader(`{"from_wallet_id":"` + fromId.String() + `"}`)
			req = httptest.NewRequest("POST", "/invoices/inv-1/pay", body)
			req.SetPathValue("id", "inv-1")
		})

		JustBeforeEach(func() {
			lh.HandlePayInvoice(w, req)
		})

		When("the payment succeeds", func() {
			BeforeEach(func() {
				fakeLedger.PayInvoiceReturns(ledger.Transaction{
					ID:       uuid.New(),
					Amount:   decimal.NewFromInt(75),
					Type:     ledger.TxTypeTransfer,
					Status:   ledger.TxStatusCompleted,
					Metadata: map[string]string{ledger.MetadataKeyInvoiceID: "inv-1"},
				}, nil)
			})

			It("should return 201", func() {
				Expect(w.Code).To(Equal(http.StatusCreated))
				_, params := fakeLedger.PayInvoiceArgsForCall(0)
				Expect(params.InvoiceID).To(Equal("inv-1"))
				Expect(params.FromWalletID).To(Equal(fromId))
			})
		})

		When("the invoice is already paid", func() {
			BeforeEach(func() {
				fakeLedger.PayInvoiceReturns(ledger.Transaction{}, ledger.ErrInvoiceAlreadyPaid)
			})

			It("should return 422", func() {
				Expect(w.Code).To(Equal(http.StatusUnprocessableEntity))
				decodeResponse()
				Expect(response.Error).To(Equal(ledger.ErrInvoiceAlreadyPaid.Error()))
			})
		})
	})
})
