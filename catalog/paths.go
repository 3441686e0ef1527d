package catalog

// Generated from the Trustap API description. Keep entries grouped by tag;
// ids follow the upstream "<tag>.<operation>" convention.
var defaultOperations = map[string]Mapping{
	// Online ("basic") transactions.
	"basic.getCharge":          {Path: "/charge", Method: MethodGet},
	"basic.createTransaction":  {Path: "/transactions", Method: MethodPost},
	"basic.listTransactions":   {Path: "/transactions", Method: MethodGet},
	"basic.getTransaction":     {Path: "/transactions/{transactionId}", Method: MethodGet},
	"basic.joinTransaction":    {Path: "/transactions/{transactionId}/join", Method: MethodPost},
	"basic.acceptTransaction":  {Path: "/transactions/{transactionId}/accept", Method: MethodPost},
	"basic.rejectTransaction":  {Path: "/transactions/{transactionId}/reject", Method: MethodPost},
	"basic.cancelTransaction":  {Path: "/transactions/{transactionId}/cancel", Method: MethodPost},
	"basic.payTransaction":     {Path: "/transactions/{transactionId}/pay", Method: MethodPost},
	"basic.setTracking":        {Path: "/transactions/{transactionId}/tracking", Method: MethodPost},
	"basic.getTracking":        {Path: "/transactions/{transactionId}/tracking", Method: MethodGet},
	"basic.confirmDelivery":    {Path: "/transactions/{transactionId}/confirm_delivery", Method: MethodPost},
	"basic.raiseComplaint":     {Path: "/transactions/{transactionId}/complain", Method: MethodPost},
	"basic.resolveComplaint":   {Path: "/transactions/{transactionId}/resolve_complaint", Method: MethodPost},
	"basic.releaseFunds":       {Path: "/transactions/{transactionId}/release_funds", Method: MethodPost},
	"basic.refundTransaction":  {Path: "/transactions/{transactionId}/refund", Method: MethodPost},
	"basic.listMyTransactions": {Path: "/me/transactions", Method: MethodGet},

	// Face-to-face ("p2p") transactions.
	"p2p.getCharge":         {Path: "/p2p/charge", Method: MethodGet},
	"p2p.createTransaction": {Path: "/p2p/transactions", Method: MethodPost},
	"p2p.listTransactions":  {Path: "/p2p/transactions", Method: MethodGet},
	"p2p.getTransaction":    {Path: "/p2p/transactions/{transactionId}", Method: MethodGet},
	"p2p.joinTransaction":   {Path: "/p2p/transactions/{transactionId}/join", Method: MethodPost},
	"p2p.payDeposit":        {Path: "/p2p/transactions/{transactionId}/pay_deposit", Method: MethodPost},
	"p2p.acceptDeposit":     {Path: "/p2p/transactions/{transactionId}/accept_deposit", Method: MethodPost},
	"p2p.rejectDeposit":     {Path: "/p2p/transactions/{transactionId}/reject_deposit", Method: MethodPost},
	"p2p.confirmHandover":   {Path: "/p2p/transactions/{transactionId}/confirm_handover", Method: MethodPost},
	"p2p.cancelTransaction": {Path: "/p2p/transactions/{transactionId}/cancel", Method: MethodPost},

	// Guest checkout.
	"guest.createGuestUser": {Path: "/guest_users", Method: MethodPost},
	"guest.getGuestUser":    {Path: "/guest_users/{guestUserId}", Method: MethodGet},

	// Current user.
	"me.getProfile": {Path: "/me", Method: MethodGet},
}
