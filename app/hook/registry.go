package hook

// Registry is the slice of the webhook manager the edge handlers use.
// Implemented by webhook.Manager.
type Registry interface {
	RegisterWebhook(url string) string
	AddFavorite(userID, itemID string)
}
