package sheet

import (
	"strings"

	"github.com/MrJamesThe3rd/wealthboard/internal/transaction"
)

// Entry is the transaction type and category a spreadsheet row item maps to.
type Entry struct {
	Type     transaction.Type
	Category string
}

// DefaultItems maps the row labels of the household budget sheet.
// Lookups ignore case and repeated or surrounding whitespace.
var DefaultItems = map[string]Entry{
	"Income":                   {transaction.TypeIncome, "Salary"},
	"Bonus/Others":             {transaction.TypeIncome, "Bonus"},
	"Recurring Deposit":        {transaction.TypeInvestment, "Recurring Deposit"},
	"SIP Mutual Funds":         {transaction.TypeInvestment, "Mutual Funds"},
	"US Stocks":                {transaction.TypeInvestment, "Stocks"},
	"Crypto":                   {transaction.TypeInvestment, "Crypto"},
	"Stocks":                   {transaction.TypeInvestment, "Stocks"},
	"LIC":                      {transaction.TypeInvestment, "Insurance"},
	"Bonds (Wint Wealth)":      {transaction.TypeInvestment, "Bonds"},
	"NPS":                      {transaction.TypeInvestment, "Retirement"},
	"Juan SIP":                 {transaction.TypeInvestment, "Education Fund"},
	"Emma SIP":                 {transaction.TypeInvestment, "Education Fund"},
	"Home Loan":                {transaction.TypeExpense, "Loan"},
	"Dad LIC":                  {transaction.TypeExpense, "Insurance"},
	"Term Insurance":           {transaction.TypeExpense, "Insurance"},
	"Medical Insurance":        {transaction.TypeExpense, "Insurance"},
	"Jeep Insurance":           {transaction.TypeExpense, "Insurance"},
	"Slavia Insurance":         {transaction.TypeExpense, "Insurance"},
	"Scooter Insurance":        {transaction.TypeExpense, "Insurance"},
	"Phone Bill":               {transaction.TypeExpense, "Utilities"},
	"Internet":                 {transaction.TypeExpense, "Utilities"},
	"Paper":                    {transaction.TypeExpense, "Utilities"},
	"Electricity":              {transaction.TypeExpense, "Utilities"},
	"Electricity (Home)":       {transaction.TypeExpense, "Utilities"},
	"Gas":                      {transaction.TypeExpense, "Utilities"},
	"Water (Home)":             {transaction.TypeExpense, "Utilities"},
	"A 302 Rent + Maintenance": {transaction.TypeExpense, "Rent"},
	"11 D Mainteance":          {transaction.TypeExpense, "Housing"},
	"Grocery, Eat out":         {transaction.TypeExpense, "Food"},
	"Medicals & Hospital":      {transaction.TypeExpense, "Health"},
	"Cash Expenses":            {transaction.TypeExpense, "Cash"},
	"Donation (Others)":        {transaction.TypeExpense, "Charity"},
	"Juan Fees":                {transaction.TypeExpense, "Education"},
	"Emma Fees":                {transaction.TypeExpense, "Education"},
	"Juan Bus Fees":            {transaction.TypeExpense, "Transport"},
	"Emma Bus Fees":            {transaction.TypeExpense, "Transport"},
	"OTT Subscriptions":        {transaction.TypeExpense, "Entertainment"},
	"Tour":                     {transaction.TypeExpense, "Travel"},
	"Travel":                   {transaction.TypeExpense, "Travel"},
	"House Help (Maid)":        {transaction.TypeExpense, "Household"},
	"House Help (Cook)":        {transaction.TypeExpense, "Household"},
	"Home (Furniture)":         {transaction.TypeExpense, "Household"},
	"Fuel (Petrol)":            {transaction.TypeExpense, "Transport"},
	"Jeep Maintenance":         {transaction.TypeExpense, "Transport"},
	"Slavia Maitenance":        {transaction.TypeExpense, "Transport"},
	"Car Parking Rent":         {transaction.TypeExpense, "Transport"},
	"Car Pollution":            {transaction.TypeExpense, "Transport"},
	"Car Expenses":             {transaction.TypeExpense, "Transport"},
	"Car Cleaning":             {transaction.TypeExpense, "Transport"},
	"Purchases":                {transaction.TypeExpense, "Shopping"},
	"Personal Grooming":        {transaction.TypeExpense, "Personal"},
}

type itemIndex map[string]Entry

func indexItems(items map[string]Entry) itemIndex {
	idx := make(itemIndex, len(items))
	for name, e := range items {
		idx[itemKey(name)] = e
	}

	return idx
}

func itemKey(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), " "))
}
