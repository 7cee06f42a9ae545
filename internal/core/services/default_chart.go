package services

import "github.com/SscSPs/hesabdar/internal/core/domain"

type chartSeed struct {
	Code        string
	Name        string
	AccountType domain.AccountType
	ParentCode  string
}

// defaultChart is the starting chart of accounts. Parents precede their children.
var defaultChart = []chartSeed{
	{"1", "دارایی‌ها", domain.Asset, ""},
	{"2", "بدهی‌ها", domain.Liability, ""},
	{"3", "حقوق صاحبان سهام", domain.Equity, ""},
	{"4", "درآمدها", domain.Revenue, ""},
	{"5", "هزینه‌ها", domain.Expense, ""},
	{"6", "بدهکاران", domain.Debtor, ""},
	{"7", "بستانکاران", domain.Creditor, ""},

	{"11", "دارایی‌های جاری", domain.Asset, "1"},
	{"111", domain.CashAccountName, domain.Asset, "11"},
	{"112", "بانک", domain.Asset, "11"},
	{"113", "موجودی کالا", domain.Asset, "11"},
	{"12", "دارایی‌های ثابت", domain.Asset, "1"},
	{"121", "ساختمان", domain.Asset, "12"},
	{"122", "ماشین‌آلات", domain.Asset, "12"},

	{"21", "بدهی‌های جاری", domain.Liability, "2"},
	{"211", "حساب‌های پرداختنی", domain.Liability, "21"},
	{"212", "وام کوتاه‌مدت", domain.Liability, "21"},
	{"22", "بدهی‌های بلندمدت", domain.Liability, "2"},
	{"221", "وام بلندمدت", domain.Liability, "22"},

	{"31", "سرمایه", domain.Equity, "3"},
	{"32", "سود انباشته", domain.Equity, "3"},

	{"41", "درآمد فروش", domain.Revenue, "4"},
	{"411", "فروش کالا", domain.Revenue, "41"},
	{"412", "فروش خدمات", domain.Revenue, "41"},
	{"42", "سایر درآمدها", domain.Revenue, "4"},

	{"51", "هزینه‌های عملیاتی", domain.Expense, "5"},
	{"511", "حقوق و دستمزد", domain.Expense, "51"},
	{"512", "اجاره", domain.Expense, "51"},
	{"513", "آب و برق و گاز", domain.Expense, "51"},
	{"514", "تلفن و اینترنت", domain.Expense, "51"},
	{"52", "هزینه‌های اداری", domain.Expense, "5"},
	{"521", "لوازم اداری", domain.Expense, "52"},
	{"522", "هزینه تبلیغات", domain.Expense, "52"},

	{"61", "مشتریان", domain.Debtor, "6"},
	{"62", "اسناد دریافتنی", domain.Debtor, "6"},

	{"71", "تامین‌کنندگان", domain.Creditor, "7"},
	{"72", "اسناد پرداختنی", domain.Creditor, "7"},
}
