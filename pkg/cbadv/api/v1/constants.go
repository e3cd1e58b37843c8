package cbadv

type SideType string

const (
	SideTypeBuy  SideType = "BUY"
	SideTypeSell SideType = "SELL"
)

type OrderStatus string

const (
	OrderStatusPending      OrderStatus = "PENDING"
	OrderStatusOpen         OrderStatus = "OPEN"
	OrderStatusFilled       OrderStatus = "FILLED"
	OrderStatusCancelled    OrderStatus = "CANCELLED"
	OrderStatusExpired      OrderStatus = "EXPIRED"
	OrderStatusFailed       OrderStatus = "FAILED"
	OrderStatusQueued       OrderStatus = "QUEUED"
	OrderStatusCancelQueued OrderStatus = "CANCEL_QUEUED"
	OrderStatusUnknown      OrderStatus = "UNKNOWN_ORDER_STATUS"
)

type OrderType string

const (
	OrderTypeMarket    OrderType = "MARKET"
	OrderTypeLimit     OrderType = "LIMIT"
	OrderTypeStop      OrderType = "STOP"
	OrderTypeStopLimit OrderType = "STOP_LIMIT"
	OrderTypeUnknown   OrderType = "UNKNOWN_ORDER_TYPE"
)

type TimeInForceType string

const (
	TimeInForceGTC     TimeInForceType = "GOOD_UNTIL_CANCELLED"
	TimeInForceGTD     TimeInForceType = "GOOD_UNTIL_DATE_TIME"
	TimeInForceIOC     TimeInForceType = "IMMEDIATE_OR_CANCEL"
	TimeInForceFOK     TimeInForceType = "FILL_OR_KILL"
	TimeInForceUnknown TimeInForceType = "UNKNOWN_TIME_IN_FORCE"
)

type StopDirection string

const (
	StopDirectionUp   StopDirection = "STOP_DIRECTION_STOP_UP"
	StopDirectionDown StopDirection = "STOP_DIRECTION_STOP_DOWN"
)

type ProductType string

const (
	ProductTypeSpot    ProductType = "SPOT"
	ProductTypeFuture  ProductType = "FUTURE"
	ProductTypeUnknown ProductType = "UNKNOWN_PRODUCT_TYPE"
)

type ProductStatus string

const (
	ProductStatusOnline   ProductStatus = "online"
	ProductStatusOffline  ProductStatus = "offline"
	ProductStatusInternal ProductStatus = "internal"
	ProductStatusDelisted ProductStatus = "delisted"
)

type Liquidity string

const (
	LiquidityMaker   Liquidity = "MAKER"
	LiquidityTaker   Liquidity = "TAKER"
	LiquidityUnknown Liquidity = "UNKNOWN_LIQUIDITY_INDICATOR"
)

type Granularity string

const (
	GranularityOneMinute     Granularity = "ONE_MINUTE"
	GranularityFiveMinute    Granularity = "FIVE_MINUTE"
	GranularityFifteenMinute Granularity = "FIFTEEN_MINUTE"
	GranularityThirtyMinute  Granularity = "THIRTY_MINUTE"
	GranularityOneHour       Granularity = "ONE_HOUR"
	GranularityTwoHour       Granularity = "TWO_HOUR"
	GranularitySixHour       Granularity = "SIX_HOUR"
	GranularityOneDay        Granularity = "ONE_DAY"
)
