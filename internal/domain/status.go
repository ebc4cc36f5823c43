package domain

// Action names a state-machine transition. Every status change in the order core
// goes through one of the transition tables below; endpoints never hardcode a
// from/to pair themselves.
type Action string

const (
	ActionPrepay        Action = "prepay"
	ActionConfirmPay    Action = "confirm_pay"
	ActionPayFail       Action = "pay_fail"
	ActionCancel        Action = "cancel"
	ActionComplete      Action = "complete"
	ActionRequestRefund Action = "request_refund"
	ActionApprove       Action = "approve"
	ActionReject        Action = "reject"
)

const (
	// OrderPending order created, payment not started.
	OrderPending string = "PENDING"
	// OrderPaying prepay requested from the gateway.
	OrderPaying string = "PAYING"
	// OrderPaid payment confirmed by the gateway.
	OrderPaid string = "PAID"
	// OrderCompleted order used, activity has taken place.
	OrderCompleted string = "COMPLETED"
	// OrderCancelled cancelled before payment.
	OrderCancelled string = "CANCELLED"
	// OrderRefunding refund requested, awaiting club review.
	OrderRefunding string = "REFUNDING"
	// OrderRefunded refund paid out.
	OrderRefunded string = "REFUNDED"
)

const (
	PaymentCreated string = "CREATED"
	PaymentSuccess string = "SUCCESS"
	PaymentFailed  string = "FAILED"
)

const (
	EnrollmentPending   string = "PENDING"
	EnrollmentOrdered   string = "ORDERED"
	EnrollmentCancelled string = "CANCELLED"
)

const (
	RefundPending   string = "PENDING"
	RefundCompleted string = "COMPLETED"
	RefundRejected  string = "REJECTED"
)

const (
	SettlementPending   string = "PENDING"
	SettlementCompleted string = "COMPLETED"
)

const (
	WithdrawalPending   string = "PENDING"
	WithdrawalApproved  string = "APPROVED"
	WithdrawalCompleted string = "COMPLETED"
	WithdrawalRejected  string = "REJECTED"
)

var orderTransitions = map[string]map[Action]string{
	OrderPending: {
		ActionPrepay: OrderPaying,
		ActionCancel: OrderCancelled,
	},
	OrderPaying: {
		ActionConfirmPay: OrderPaid,
		// a PAYING order is only unstuck by the sync/reconciliation path
		ActionPayFail: OrderPending,
	},
	OrderPaid: {
		ActionComplete:      OrderCompleted,
		ActionRequestRefund: OrderRefunding,
	},
	OrderCompleted: {
		ActionRequestRefund: OrderRefunding,
	},
	OrderRefunding: {
		ActionApprove: OrderRefunded,
		ActionReject:  OrderPaid,
	},
}

var refundTransitions = map[string]map[Action]string{
	RefundPending: {
		ActionApprove: RefundCompleted,
		ActionReject:  RefundRejected,
	},
}

var withdrawalTransitions = map[string]map[Action]string{
	WithdrawalPending: {
		ActionApprove: WithdrawalApproved,
		ActionReject:  WithdrawalRejected,
	},
	WithdrawalApproved: {
		ActionComplete: WithdrawalCompleted,
	},
}

func next(table map[string]map[Action]string, current string, action Action) (string, bool) {
	actions, ok := table[current]
	if !ok {
		return "", false
	}
	to, ok := actions[action]
	return to, ok
}

// NextOrderStatus resolves an order transition. The second return is false when
// the action is not permitted from the current status.
func NextOrderStatus(current string, action Action) (string, bool) {
	return next(orderTransitions, current, action)
}

func NextRefundStatus(current string, action Action) (string, bool) {
	return next(refundTransitions, current, action)
}

func NextWithdrawalStatus(current string, action Action) (string, bool) {
	return next(withdrawalTransitions, current, action)
}

// OrderRefundable reports whether a refund may be requested for the status.
func OrderRefundable(status string) bool {
	_, ok := NextOrderStatus(status, ActionRequestRefund)
	return ok
}

// OrderVerifiable reports whether an order in the status may be checked in.
func OrderVerifiable(status string) bool {
	return status == OrderPaid || status == OrderCompleted
}
