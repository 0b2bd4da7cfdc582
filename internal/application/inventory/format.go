package inventory

import (
	"strings"

	"github.com/jhoicas/hardware-store/internal/domain/entity"
)

func formatItems(items []*entity.Item) string {
	var b strings.Builder
	b.WriteString(entity.ItemTableHeader())
	for _, it := range items {
		b.WriteString(it.FormattedText())
	}
	b.WriteString(entity.ItemTableRule())
	return b.String()
}

func formatUsers(users []*entity.User) string {
	var b strings.Builder
	b.WriteString(entity.UserTableHeader())
	for _, u := range users {
		b.WriteString(u.FormattedText())
	}
	b.WriteString(entity.UserTableRule())
	return b.String()
}

func formatTransactions(txs []*entity.Transaction) string {
	var b strings.Builder
	b.WriteString(entity.TransactionTableHeader())
	for _, t := range txs {
		b.WriteString(t.FormattedText())
	}
	b.WriteString(entity.TransactionTableRule())
	return b.String()
}
