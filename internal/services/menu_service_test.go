package services

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/rafabene/adminpro-backend/internal/domain/entities"
	"github.com/rafabene/adminpro-backend/internal/dto"
)

var _ = Describe("MenuService", func() {
	var (
		ctx context.Context
		svc *MenuService

		grantRepo      *fakeRolFormPermissionRepo
		permissionRepo *fakeRepo[entities.Permission]
		formRepo       *fakeRepo[entities.Form]
		formModuleRepo *fakeFormModuleRepo
		moduleRepo     *fakeRepo[entities.Module]

		rol entities.Rol
	)

	addModule := func(code string) *entities.Module {
		module := &entities.Module{Code: code, Active: true}
		Expect(moduleRepo.Create(ctx, module)).To(Succeed())
		return module
	}

	addForm := func(name, code string) *entities.Form {
		form := &entities.Form{Name: name, Code: code, Active: true}
		Expect(formRepo.Create(ctx, form)).To(Succeed())
		return form
	}

	addPermission := func(canRead bool) *entities.Permission {
		permission := &entities.Permission{CanRead: canRead}
		Expect(permissionRepo.Create(ctx, permission)).To(Succeed())
		return permission
	}

	link := func(form *entities.Form, module *entities.Module) {
		Expect(formModuleRepo.Create(ctx, &entities.FormModule{FormID: form.ID, ModuleID: module.ID})).To(Succeed())
	}

	grant := func(form *entities.Form, permission *entities.Permission) {
		Expect(grantRepo.Create(ctx, &entities.RolFormPermission{
			RolID:        rol.ID,
			FormID:       form.ID,
			PermissionID: permission.ID,
		})).To(Succeed())
	}

	BeforeEach(func() {
		ctx = context.Background()

		grantRepo = newFakeRolFormPermissionRepo()
		permissionRepo = newFakeRepo(func(e *entities.Permission, id int64) { e.ID = id })
		formRepo = newFakeRepo(func(e *entities.Form, id int64) { e.ID = id })
		formModuleRepo = newFakeFormModuleRepo()
		moduleRepo = newFakeRepo(func(e *entities.Module, id int64) { e.ID = id })

		svc = NewMenuService(grantRepo, permissionRepo, formRepo, formModuleRepo, moduleRepo, nopLogger{})

		rol = entities.Rol{ID: 1, Name: "admin"}
	})

	Describe("GetMenuByRolID", func() {
		Context("quando o rol não tem concessões", func() {
			It("retorna um menu vazio, não um erro", func() {
				menu, err := svc.GetMenuByRolID(ctx, rol.ID)

				Expect(err).NotTo(HaveOccurred())
				Expect(menu).NotTo(BeNil())
				Expect(menu).To(BeEmpty())
			})
		})

		Context("quando o rol tem concessões de leitura", func() {
			It("agrupa os forms sob seus modules", func() {
				sales := addModule("SALES")
				orders := addForm("Orders", "ORD")
				invoices := addForm("Invoices", "INV")
				link(orders, sales)
				link(invoices, sales)
				readable := addPermission(true)
				grant(orders, readable)
				grant(invoices, readable)

				menu, err := svc.GetMenuByRolID(ctx, rol.ID)

				Expect(err).NotTo(HaveOccurred())
				Expect(menu).To(HaveLen(1))
				Expect(menu[0].ModuleID).To(Equal(sales.ID))
				Expect(menu[0].ModuleCode).To(Equal("SALES"))
				Expect(menu[0].Forms).To(Equal([]dto.MenuFormDTO{
					{FormID: orders.ID, Name: "Orders", Code: "ORD"},
					{FormID: invoices.ID, Name: "Invoices", Code: "INV"},
				}))
			})

			It("ordena os modules pela primeira aparição nas concessões", func() {
				sales := addModule("SALES")
				hr := addModule("HR")
				payroll := addForm("Payroll", "PAY")
				orders := addForm("Orders", "ORD")
				link(payroll, hr)
				link(orders, sales)
				readable := addPermission(true)
				grant(payroll, readable)
				grant(orders, readable)

				menu, err := svc.GetMenuByRolID(ctx, rol.ID)

				Expect(err).NotTo(HaveOccurred())
				Expect(menu).To(HaveLen(2))
				Expect(menu[0].ModuleCode).To(Equal("HR"))
				Expect(menu[1].ModuleCode).To(Equal("SALES"))
			})

			It("inclui um form em todos os modules aos quais está vinculado", func() {
				sales := addModule("SALES")
				reports := addModule("REPORTS")
				orders := addForm("Orders", "ORD")
				link(orders, sales)
				link(orders, reports)
				grant(orders, addPermission(true))

				menu, err := svc.GetMenuByRolID(ctx, rol.ID)

				Expect(err).NotTo(HaveOccurred())
				Expect(menu).To(HaveLen(2))
				Expect(menu[0].ModuleCode).To(Equal("SALES"))
				Expect(menu[1].ModuleCode).To(Equal("REPORTS"))
				for _, item := range menu {
					Expect(item.Forms).To(HaveLen(1))
					Expect(item.Forms[0].FormID).To(Equal(orders.ID))
				}
			})

			It("não repete o form quando há concessões duplicadas", func() {
				sales := addModule("SALES")
				orders := addForm("Orders", "ORD")
				link(orders, sales)
				readable := addPermission(true)
				grant(orders, readable)
				grant(orders, readable)

				menu, err := svc.GetMenuByRolID(ctx, rol.ID)

				Expect(err).NotTo(HaveOccurred())
				Expect(menu).To(HaveLen(1))
				Expect(menu[0].Forms).To(HaveLen(1))
			})
		})

		Context("quando a concessão não dá leitura", func() {
			It("não projeta o form no menu", func() {
				sales := addModule("SALES")
				orders := addForm("Orders", "ORD")
				link(orders, sales)
				grant(orders, addPermission(false))

				menu, err := svc.GetMenuByRolID(ctx, rol.ID)

				Expect(err).NotTo(HaveOccurred())
				Expect(menu).To(BeEmpty())
			})
		})

		Context("quando um referenciado da concessão foi removido", func() {
			It("pula concessões cuja permission não existe mais", func() {
				sales := addModule("SALES")
				orders := addForm("Orders", "ORD")
				link(orders, sales)
				readable := addPermission(true)
				grant(orders, readable)
				_, err := permissionRepo.Delete(ctx, readable.ID)
				Expect(err).NotTo(HaveOccurred())

				menu, err := svc.GetMenuByRolID(ctx, rol.ID)

				Expect(err).NotTo(HaveOccurred())
				Expect(menu).To(BeEmpty())
			})

			It("pula concessões cujo form não existe mais", func() {
				sales := addModule("SALES")
				orders := addForm("Orders", "ORD")
				link(orders, sales)
				grant(orders, addPermission(true))
				_, err := formRepo.Delete(ctx, orders.ID)
				Expect(err).NotTo(HaveOccurred())

				menu, err := svc.GetMenuByRolID(ctx, rol.ID)

				Expect(err).NotTo(HaveOccurred())
				Expect(menu).To(BeEmpty())
			})

			It("pula vínculos cujo module não existe mais", func() {
				sales := addModule("SALES")
				orders := addForm("Orders", "ORD")
				link(orders, sales)
				grant(orders, addPermission(true))
				_, err := moduleRepo.Delete(ctx, sales.ID)
				Expect(err).NotTo(HaveOccurred())

				menu, err := svc.GetMenuByRolID(ctx, rol.ID)

				Expect(err).NotTo(HaveOccurred())
				Expect(menu).To(BeEmpty())
			})

			It("ignora forms sem vínculo com nenhum module", func() {
				orphan := addForm("Orphan", "ORP")
				grant(orphan, addPermission(true))

				menu, err := svc.GetMenuByRolID(ctx, rol.ID)

				Expect(err).NotTo(HaveOccurred())
				Expect(menu).To(BeEmpty())
			})
		})
	})
})
