package catalog

// Generated from the Trustap API description's security declarations.
// Scheme names match the upstream components: "APIKey" endpoints take the
// partner's Basic credentials, "OAuth2" endpoints a user access token.
var defaultSecurity = SecurityMap{
	{Path: "/charge", Methods: map[string][]string{
		"GET": {"APIKey"},
	}},
	{Path: "/p2p/charge", Methods: map[string][]string{
		"GET": {"APIKey"},
	}},
	{Path: "/guest_users", Methods: map[string][]string{
		"POST": {"APIKey"},
	}},
	{Path: "/guest_users/{guestUserId}", Methods: map[string][]string{
		"GET": {"APIKey"},
	}},
	{Path: "/me", Methods: map[string][]string{
		"GET": {"OAuth2"},
	}},
	{Path: "/me/transactions", Methods: map[string][]string{
		"GET": {"OAuth2"},
	}},
	{Path: "/transactions", Methods: map[string][]string{
		"GET":  {"OAuth2"},
		"POST": {"OAuth2", "APIKey"},
	}},
	{Path: "/transactions/{transactionId}", Methods: map[string][]string{
		"GET": {"OAuth2", "APIKey"},
	}},
	{Path: "/transactions/{transactionId}/join", Methods: map[string][]string{
		"POST": {"OAuth2"},
	}},
	{Path: "/transactions/{transactionId}/accept", Methods: map[string][]string{
		"POST": {"OAuth2"},
	}},
	{Path: "/transactions/{transactionId}/reject", Methods: map[string][]string{
		"POST": {"OAuth2"},
	}},
	{Path: "/transactions/{transactionId}/cancel", Methods: map[string][]string{
		"POST": {"OAuth2"},
	}},
	{Path: "/transactions/{transactionId}/pay", Methods: map[string][]string{
		"POST": {"OAuth2"},
	}},
	{Path: "/transactions/{transactionId}/tracking", Methods: map[string][]string{
		"GET":  {"OAuth2"},
		"POST": {"OAuth2"},
	}},
	{Path: "/transactions/{transactionId}/confirm_delivery", Methods: map[string][]string{
		"POST": {"OAuth2"},
	}},
	{Path: "/transactions/{transactionId}/complain", Methods: map[string][]string{
		"POST": {"OAuth2"},
	}},
	{Path: "/transactions/{transactionId}/resolve_complaint", Methods: map[string][]string{
		"POST": {"APIKey"},
	}},
	{Path: "/transactions/{transactionId}/release_funds", Methods: map[string][]string{
		"POST": {"APIKey"},
	}},
	{Path: "/transactions/{transactionId}/refund", Methods: map[string][]string{
		"POST": {"APIKey"},
	}},
	{Path: "/p2p/transactions", Methods: map[string][]string{
		"GET":  {"OAuth2"},
		"POST": {"OAuth2"},
	}},
	{Path: "/p2p/transactions/{transactionId}", Methods: map[string][]string{
		"GET": {"OAuth2", "APIKey"},
	}},
	{Path: "/p2p/transactions/{transactionId}/join", Methods: map[string][]string{
		"POST": {"OAuth2"},
	}},
	{Path: "/p2p/transactions/{transactionId}/pay_deposit", Methods: map[string][]string{
		"POST": {"OAuth2"},
	}},
	{Path: "/p2p/transactions/{transactionId}/accept_deposit", Methods: map[string][]string{
		"POST": {"OAuth2"},
	}},
	{Path: "/p2p/transactions/{transactionId}/reject_deposit", Methods: map[string][]string{
		"POST": {"OAuth2"},
	}},
	{Path: "/p2p/transactions/{transactionId}/confirm_handover", Methods: map[string][]string{
		"POST": {"OAuth2"},
	}},
	{Path: "/p2p/transactions/{transactionId}/cancel", Methods: map[string][]string{
		"POST": {"OAuth2"},
	}},
}
