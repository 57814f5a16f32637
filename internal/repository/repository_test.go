package repository_test

import (
	"context"
	"database/sql"

	"finledger/internal/db"
	"finledger/internal/ledger"
	"finledger/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/shopspring/decimal"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var _ = Describe("LedgerRepository", func() {
	var (
		repo   *repository.LedgerRepository
		mock   sqlmock.Sqlmock
		mockDb *sql.DB
		ctx    context.Context
		err    error

		fromId uuid.UUID
		toId   uuid.UUID
	)

	BeforeEach(func() {
		mockDb, mock, err = sqlmock.New()
		Expect(err).NotTo(HaveOccurred())

		dialector := postgres.New(postgres.Config{
			Conn:       mockDb,
			DriverName: "postgres",
		})

		gormDB, err := gorm.Open(dialector, &gorm.Config{})
		Expect(err).NotTo(HaveOccurred())

		repo = repository.NewLedgerRepository(&db.PostgresDB{DB: gormDB})
		ctx = context.Background()

		// ids chosen so the ascending lock order is deterministic
		fromId = uuid.MustParse("11111111-1111-1111-1111-111111111111")
		toId = uuid.MustParse("22222222-2222-2222-2222-222222222222")
	})

	AfterEach(func() {
		mock.ExpectClose()
		Expect(mockDb.Close()).To(Succeed())
	})

	walletRow := func(id uuid.UUID, balance, currency string) *sqlmock.Rows {
		return sqlmock.NewRows([]string{"id", "owner_user_id", "type", "balance", "currency"}).
			AddRow(id, "user-1", "main", balance, currency)
	}

	Describe("GetWallet", func() {
		When("the wallet exists", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT \* FROM "wallets" WHERE id = \$1.*`).
					WithArgs(fromId, 1).
					WillReturnRows(walletRow(fromId, "100", "USD"))
			})

			It("should return the wallet", func() {
				wallet, err := repo.GetWallet(ctx, fromId)
				Expect(err).NotTo(HaveOccurred())
				Expect(wallet.ID).To(Equal(fromId))
				Expect(wallet.Balance.String()).To(Equal("100"))
				Expect(wallet.Currency).To(Equal("USD"))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("the wallet does not exist", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT \* FROM "wallets" WHERE id = \$1.*`).
					WithArgs(fromId, 1).
					WillReturnError(gorm.ErrRecordNotFound)
			})

			It("should return ErrWalletNotFound", func() {
				_, err := repo.GetWallet(ctx, fromId)
				Expect(err).To(MatchError(ledger.ErrWalletNotFound))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})
	})

	Describe("Append", func() {
		var record ledger.Transaction

		BeforeEach(func() {
			record = ledger.Transaction{
				ID:           uuid.New(),
				FromWalletID: &fromId,
				ToWalletID:   &toId,
				Amount:       decimal.NewFromInt(25),
				Currency:     "USD",
				Type:         ledger.TxTypeTransfer,
				Status:       ledger.TxStatusCompleted,
			}
		})

		When("both wallets can cover the movement", func() {
			BeforeEach(func() {
				mock.ExpectBegin()
				mock.ExpectQuery(`SELECT \* FROM "wallets" WHERE id = \$1.*FOR UPDATE`).
					WithArgs(fromId, 1).
					WillReturnRows(walletRow(fromId, "100", "USD"))
				mock.ExpectQuery(`SELECT \* FROM "wallets" WHERE id = \$1.*FOR UPDATE`).
					WithArgs(toId, 1).
					WillReturnRows(walletRow(toId, "10", "USD"))
				mock.ExpectExec(`UPDATE "wallets" SET .*WHERE id = \$\d`).
					WithArgs("75", sqlmock.AnyArg(), fromId).
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectExec(`UPDATE "wallets" SET .*WHERE id = \$\d`).
					WithArgs("35", sqlmock.AnyArg(), toId).
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectExec(`INSERT INTO "transactions"`).
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			})

			It("should lock both wallets, adjust balances and insert the record", func() {
				tx, err := repo.Append(ctx, record)
				Expect(err).NotTo(HaveOccurred())
				Expect(tx.ID).To(Equal(record.ID))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("the source wallet cannot cover the amount", func() {
			BeforeEach(func() {
				mock.ExpectBegin()
				mock.ExpectQuery(`SELECT \* FROM "wallets" WHERE id = \$1.*FOR UPDATE`).
					WithArgs(fromId, 1).
					WillReturnRows(walletRow(fromId, "10", "USD"))
				mock.ExpectQuery(`SELECT \* FROM "wallets" WHERE id = \$1.*FOR UPDATE`).
					WithArgs(toId, 1).
					WillReturnRows(walletRow(toId, "0", "USD"))
				mock.ExpectRollback()
			})

			It("should roll back and return ErrInsufficientFunds", func() {
				_, err := repo.Append(ctx, record)
				Expect(err).To(MatchError(ledger.ErrInsufficientFunds))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("a locked wallet holds another currency", func() {
			BeforeEach(func() {
				mock.ExpectBegin()
				mock.ExpectQuery(`SELECT \* FROM "wallets" WHERE id = \$1.*FOR UPDATE`).
					WithArgs(fromId, 1).
					WillReturnRows(walletRow(fromId, "100", "EUR"))
				mock.ExpectRollback()
			})

			It("should roll back and return ErrCurrencyMismatch", func() {
				_, err := repo.Append(ctx, record)
				Expect(err).To(MatchError(ledger.ErrCurrencyMismatch))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("a wallet row is missing", func() {
			BeforeEach(func() {
				mock.ExpectBegin()
				mock.ExpectQuery(`SELECT \* FROM "wallets" WHERE id = \$1.*FOR UPDATE`).
					WithArgs(fromId, 1).
					WillReturnError(gorm.ErrRecordNotFound)
				mock.ExpectRollback()
			})

			It("should roll back and return ErrWalletNotFound", func() {
				_, err := repo.Append(ctx, record)
				Expect(err).To(MatchError(ledger.ErrWalletNotFound))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("the record only credits a wallet", func() {
			BeforeEach(func() {
				record.FromWalletID = nil
				record.Type = ledger.TxTypeDeposit

				mock.ExpectBegin()
				mock.ExpectQuery(`SELECT \* FROM "wallets" WHERE id = \$1.*FOR UPDATE`).
					WithArgs(toId, 1).
					WillReturnRows(walletRow(toId, "10", "USD"))
				mock.ExpectExec(`UPDATE "wallets" SET .*WHERE id = \$\d`).
					WithArgs("35", sqlmock.AnyArg(), toId).
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectExec(`INSERT INTO "transactions"`).
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			})

			It("should lock only the credited wallet", func() {
				_, err := repo.Append(ctx, record)
				Expect(err).NotTo(HaveOccurred())
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})
	})

	Describe("History", func() {
		BeforeEach(func() {
			mock.ExpectQuery(`SELECT \* FROM "transactions" WHERE from_wallet_id = \$1 OR to_wallet_id = \$2.*`).
				WithArgs(fromId, fromId).
				WillReturnRows(sqlmock.NewRows([]string{"id", "to_wallet_id", "amount", "currency", "type", "status"}).
					AddRow(uuid.New(), fromId, "100", "USD", "deposit", "completed").
					AddRow(uuid.New(), fromId, "25", "USD", "transfer", "completed"))
		})

		It("should return the wallet's transactions oldest first", func() {
			history, err := repo.History(ctx, fromId)
			Expect(err).NotTo(HaveOccurred())
			Expect(history).To(HaveLen(2))
			Expect(history[0].Type).To(Equal(ledger.TxTypeDeposit))
			Expect(history[1].Type).To(Equal(ledger.TxTypeTransfer))
			Expect(mock.ExpectationsWereMet()).To(Succeed())
		})
	})

	Describe("HistoryByUser", func() {
		BeforeEach(func() {
			mock.ExpectQuery(`SELECT \* FROM "transactions" WHERE from_wallet_id IN \(SELECT "id" FROM "wallets" WHERE owner_user_id = \$1\) OR to_wallet_id IN \(SELECT "id" FROM "wallets" WHERE owner_user_id = \$2\).*`).
				WithArgs("user-1", "user-1").
				WillReturnRows(sqlmock.NewRows([]string{"id", "to_wallet_id", "amount", "currency", "type", "status"}).
					AddRow(uuid.New(), fromId, "100", "USD", "deposit", "completed").
					AddRow(uuid.New(), toId, "40", "EUR", "deposit", "completed"))
		})

		It("should return transactions across all of the user's wallets", func() {
			history, err := repo.HistoryByUser(ctx, "user-1")
			Expect(err).NotTo(HaveOccurred())
			Expect(history).To(HaveLen(2))
			Expect(history[0].Currency).To(Equal("USD"))
			Expect(history[1].Currency).To(Equal("EUR"))
			Expect(mock.ExpectationsWereMet()).To(Succeed())
		})
	})

	Describe("FindByIdempotencyKey", func() {
		When("a record carries the key", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT \* FROM "transactions" WHERE idempotency_key = \$1.*`).
					WithArgs("key-1", 1).
					WillReturnRows(sqlmock.NewRows([]string{"id", "amount", "currency", "type", "status", "idempotency_key"}).
						AddRow(fromId, "25", "USD", "deposit", "completed", "key-1"))
			})

			It("should return the record and report it found", func() {
				tx, found, err := repo.FindByIdempotencyKey(ctx, "key-1")
				Expect(err).NotTo(HaveOccurred())
				Expect(found).To(BeTrue())
				Expect(tx.Amount.String()).To(Equal("25"))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("no record carries the key", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT \* FROM "transactions" WHERE idempotency_key = \$1.*`).
					WithArgs("key-404", 1).
					WillReturnError(gorm.ErrRecordNotFound)
			})

			It("should report not found without an error", func() {
				_, found, err := repo.FindByIdempotencyKey(ctx, "key-404")
				Expect(err).NotTo(HaveOccurred())
				Expect(found).To(BeFalse())
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})
	})
})
