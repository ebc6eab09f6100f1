// Package insight renders deterministic natural-language summaries of
// recent account activity. Despite the product name there is no model
// call anywhere: the output is templated arithmetic over the
// transaction list, so identical input data always yields byte-identical
// output.
package insight

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/ggodin1981/NextGenSaaSEnterprisePlatform-Backend/internal/models"
)

// recentWindow caps how many transactions feed the summary.
const recentWindow = 20

// BuildAccountInsight summarizes an account's recent activity.
//
// It looks at the most recent transactions (by date descending, at most
// 20), totals credits and debits, classifies the trend and describes the
// single most recent transaction. A pure function of its arguments.
func BuildAccountInsight(account *models.Account, txns []*models.Transaction) string {
	recent := make([]*models.Transaction, len(txns))
	copy(recent, txns)
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].Date.After(recent[j].Date)
	})
	if len(recent) > recentWindow {
		recent = recent[:recentWindow]
	}

	if len(recent) == 0 {
		return "No recent transactions found for this account. The balance appears stable with no recent activity."
	}

	totalCredits := decimal.Zero
	totalDebits := decimal.Zero
	for _, t := range recent {
		switch {
		case strings.EqualFold(string(t.Type), string(models.TypeCredit)):
			totalCredits = totalCredits.Add(t.Amount)
		case strings.EqualFold(string(t.Type), string(models.TypeDebit)):
			totalDebits = totalDebits.Add(t.Amount)
		}
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Analyzing last %d transactions for account '%s'.\n", len(recent), account.Name)
	fmt.Fprintf(&sb, "Current balance: %s.\n", formatMoney(account.Balance))
	fmt.Fprintf(&sb, "Recent credits total: %s. Recent debits total: %s.\n",
		formatMoney(totalCredits), formatMoney(totalDebits))

	if totalDebits.GreaterThan(totalCredits) {
		sb.WriteString("Spending is higher than income in the recent period. Consider reviewing recurring expenses.\n")
	} else {
		sb.WriteString("Income is higher than spending in the recent period. The account trend appears healthy.\n")
	}

	latest := recent[0]
	fmt.Fprintf(&sb, "Most recent transaction: %s of %s on %s, '%s'.\n",
		latest.Type, formatMoney(latest.Amount), latest.Date.Format("2006-01-02"), latest.Description)

	return sb.String()
}

// formatMoney renders a decimal as a currency string with two decimal
// places, e.g. $15000.00.
func formatMoney(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}
