package invoice_test

import (
	"context"
	"database/sql"
	"time"

	"finledger/internal/db"
	"finledger/internal/invoice"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/DATA-DOG/go-sqlmock"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var _ = Describe("Service", func() {
	var (
		mock    sqlmock.Sqlmock
		mockDb  *sql.DB
		err     error
		service *invoice.Service
		ctx     context.Context
	)

	BeforeEach(func() {
		ctx = context.Background()

		mockDb, mock, err = sqlmock.New()
		Expect(err).NotTo(HaveOccurred())

		dialector := postgres.New(postgres.Config{
			Conn:       mockDb,
			DriverName: "postgres",
		})

		gormDB, err := gorm.Open(dialector, &gorm.Config{})
		Expect(err).NotTo(HaveOccurred())

		service = invoice.NewService(&db.PostgresDB{DB: gormDB})
	})

	AfterEach(func() {
		mock.ExpectClose()
		Expect(mockDb.Close()).To(Succeed())
	})

	Describe("Get", func() {
		When("the invoice exists", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT \* FROM "invoices" WHERE id = \$1 ORDER BY "invoices"\."id" LIMIT \$2.*`).
					WithArgs("inv-1", 1).
					WillReturnRows(sqlmock.NewRows([]string{"id", "seller_user_id", "buyer_user_id", "amount", "currency", "status", "created_at", "updated_at"}).
						AddRow("inv-1", "seller-1", "buyer-1", "250.00", "USD", invoice.StatusIssued, time.Now(), time.Now()))
			})

			It("should return the invoice", func() {
				inv, err := service.Get(ctx, "inv-1")
				Expect(err).NotTo(HaveOccurred())
				Expect(inv.ID).To(Equal("inv-1"))
				Expect(inv.SellerUserID).To(Equal("seller-1"))
				Expect(inv.Amount.String()).To(Equal("250"))
				Expect(inv.Status).To(Equal(invoice.StatusIssued))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("the invoice does not exist", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT \* FROM "invoices" WHERE id = \$1 ORDER BY "invoices"\."id" LIMIT \$2.*`).
					WithArgs("ghost", 1).
					WillReturnError(gorm.ErrRecordNotFound)
			})

			It("should return the not found error", func() {
				_, err := service.Get(ctx, "ghost")
				Expect(err).To(MatchError(invoice.ErrInvoiceNotFound))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})
	})

	Describe("MarkPaid", func() {
		When("the invoice exists", func() {
			BeforeEach(func() {
				mock.ExpectBegin()
				mock.ExpectExec(`UPDATE "invoices" SET`).
					WithArgs(invoice.StatusPaid, sqlmock.AnyArg(), "inv-1").
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			})

			It("should flip the status to paid", func() {
				Expect(service.MarkPaid(ctx, "inv-1")).To(Succeed())
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("no rows are updated", func() {
			BeforeEach(func() {
				mock.ExpectBegin()
				mock.ExpectExec(`UPDATE "invoices" SET`).
					WithArgs(invoice.StatusPaid, sqlmock.AnyArg(), "ghost").
					WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectCommit()
			})

			It("should return the not found error", func() {
				err := service.MarkPaid(ctx, "ghost")
				Expect(err).To(MatchError(invoice.ErrInvoiceNotFound))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})
	})
})
