package http

import (
	"github.com/urutiq/ledger-draft/pkg/http/jm"
)

// Ensure JournalClient implements the backend interface used by services.
var _ jm.JournalClientInterface = (*JournalClient)(nil)
