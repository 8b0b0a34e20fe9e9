package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUpdateDocumentQuery_LeavesReceivedToPayments(t *testing.T) {
	assert.NotContains(t, updateDocumentQuery, "amount_received")
	assert.Contains(t, updateDocumentQuery, "balance_due = :balance_due")
	assert.Contains(t, updateDocumentQuery, "payment_status = :payment_status")
	assert.Contains(t, updateDocumentQuery, "WHERE id = :id AND company_id = :company_id")
}
