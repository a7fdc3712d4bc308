package kafka

const (
	// TopicProductViews carries storefront product view events.
	TopicProductViews = "storefront.product-views"
	// ConsumerGroupProductViews is the group that folds views into quarter-hour counters.
	ConsumerGroupProductViews = "vendor-report-views"
)
