package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"

	"finledger/internal/chain"
	"finledger/internal/http/handler"
	"finledger/internal/http/handler/fake"

	"github.com/ethereum/go-ethereum/common"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var _ = Describe("ChainHandler", func() {
	var (
		ch            *handler.ChainHandler
		fakeBridge    *fake.ChainService
		fakeValidator *fake.RequestValidator
		fakeLogger    *zap.SugaredLogger
		w             *httptest.ResponseRecorder
		req           *http.Request

		session *chain.Session
	)

	BeforeEach(func() {
		fakeBridge = new(fake.ChainService)
		fakeValidator = new(fake.RequestValidator)
		fakeLogger = zap.NewNop().Sugar()

		session = &chain.Session{
			Address: common.HexToAddress("0x00000000000000000000000000000000000000aa"),
			ChainID: chain.Testnet.ChainID,
			Network: chain.Testnet,
		}
		fakeBridge.ConnectReturns(session, nil)

		fakeValidator.DecodeAndValidateJSONPayloadStub = func(rec *http.Request, jsonPayload any) error {
			return json.NewDecoder(rec.Body).Decode(jsonPayload)
		}

		w = httptest.NewRecorder()
		ch = handler.NewChainHandler(fakeLogger, fakeValidator, fakeBridge, chain.Testnet)
	})

	Describe("HandleConnect", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("POST", "/chain/connect", nil)
		})

		JustBeforeEach(func() {
			ch.HandleConnect(w, req)
		})

		When("a session is established", func() {
			It("should return the connection info", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				Expect(w.Body.String()).To(ContainSubstring(session.Address.Hex()))
				Expect(w.Body.String()).To(ContainSubstring(chain.Testnet.ChainID.String()))
				Expect(fakeBridge.ConnectCallCount()).To(Equal(1))
			})
		})

		When("every connection strategy fails", func() {
			BeforeEach(func() {
				fakeBridge.ConnectReturns(nil, chain.ErrConnectionFailed)
			})

			It("should return 502", func() {
				Expect(w.Code).To(Equal(http.StatusBadGateway))
			})
		})
	})

	Describe("HandleTokenBalance", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("GET", "/chain/tokens/USDC/balance", nil)
			req.SetPathValue("symbol", "USDC")
		})

		JustBeforeEach(func() {
			ch.HandleTokenBalance(w, req)
		})

		When("no session is established yet", func() {
			BeforeEach(func() {
				fakeBridge.TokenBalanceReturns(decimal.Zero, chain.ErrProviderNotSet)
			})

			It("should return 409 telling the caller to connect", func() {
				Expect(w.Code).To(Equal(http.StatusConflict))
				Expect(w.Body.String()).To(ContainSubstring("connect first"))
			})
		})

		When("a session exists", func() {
			BeforeEach(func() {
				connectReq := httptest.NewRequest("POST", "/chain/connect", nil)
				ch.HandleConnect(httptest.NewRecorder(), connectReq)

				fakeBridge.TokenBalanceReturns(decimal.RequireFromString("123.456789"), nil)
			})

			It("should return the scaled balance", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				Expect(w.Body.String()).To(ContainSubstring("123.456789"))

				_, usedSession, tokenAddr, holder := fakeBridge.TokenBalanceArgsForCall(0)
				Expect(usedSession).To(Equal(session))
				expectedAddr, _ := chain.Testnet.TokenAddress("USDC")
				Expect(tokenAddr).To(Equal(expectedAddr))
				Expect(holder).To(BeNil())
			})
		})

		When("the symbol is unknown on the network", func() {
			BeforeEach(func() {
				req.SetPathValue("symbol", "DOGE")
			})

			It("should return 404", func() {
				Expect(w.Code).To(Equal(http.StatusNotFound))
				Expect(fakeBridge.TokenBalanceCallCount()).To(Equal(0))
			})
		})
	})

	Describe("HandlePayment", func() {
		BeforeEach(func() {
			connectReq := httptest.NewRequest("POST", "/chain/connect", nil)
			ch.HandleConnect(httptest.NewRecorder(), connectReq)

			body := strings.NewReader(`{"token":"USDC","recipient":"0x00000000000000000000000000000000000000ee","amount":"250","invoice_id":"inv-1"}`)
			req = httptest.NewRequest("POST", "/chain/payments", body)
		})

		JustBeforeEach(func() {
			ch.HandlePayment(w, req)
		})

		When("both phases confirm", func() {
			BeforeEach(func() {
				fakeBridge.ProcessPaymentReturns(&chain.PaymentResult{
					ApprovalTxHash: common.HexToHash("0x01"),
					PaymentTxHash:  common.HexToHash("0x02"),
					BlockNumber:    7,
				}, nil)
			})

			It("should return 201 with both transaction hashes", func() {
				Expect(w.Code).To(Equal(http.StatusCreated))
				Expect(w.Body.String()).To(ContainSubstring(common.HexToHash("0x01").Hex()))
				Expect(w.Body.String()).To(ContainSubstring(common.HexToHash("0x02").Hex()))

				_, usedSession, params := fakeBridge.ProcessPaymentArgsForCall(0)
				Expect(usedSession).To(Equal(session))
				Expect(params.Processor).To(Equal(chain.Testnet.PaymentProcessor))
				Expect(params.InvoiceID).To(Equal("inv-1"))
				Expect(params.Amount.String()).To(Equal("250"))
			})
		})

		When("the approval phase fails", func() {
			BeforeEach(func() {
				fakeBridge.ProcessPaymentReturns(nil, &chain.PaymentError{
					Phase: chain.PhaseApprove,
					Err:   chain.ErrNetwork,
				})
			})

			It("should return 502 naming the failed phase", func() {
				Expect(w.Code).To(Equal(http.StatusBadGateway))
				Expect(w.Body.String()).To(ContainSubstring("approve"))
			})
		})

		When("the amount is finer than the token precision", func() {
			BeforeEach(func() {
				fakeBridge.ProcessPaymentReturns(nil, &chain.PaymentError{
					Phase: chain.PhaseApprove,
					Err:   chain.ErrAmountPrecision,
				})
			})

			It("should return 422", func() {
				Expect(w.Code).To(Equal(http.StatusUnprocessableEntity))
			})
		})
	})
})
