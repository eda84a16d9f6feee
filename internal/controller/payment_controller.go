package controller

import (
	"bjj_academy_backend/internal/model"
	"bjj_academy_backend/internal/service"
	"bjj_academy_backend/internal/util"
	"errors"

	"github.com/gin-gonic/gin"
)

type PaymentController struct {
	PaymentService *service.PaymentService
}

func NewPaymentController(paymentService *service.PaymentService) *PaymentController {
	return &PaymentController{PaymentService: paymentService}
}

// CapturePurchaseRequest 购买验证请求
// swagger:model CapturePurchaseRequest
type CapturePurchaseRequest struct {
	OrderID     string `json:"orderId" binding:"required"`
	ContentType string `json:"contentType" binding:"required,oneof=drill course"`
	ContentID   uint   `json:"contentId" binding:"required"`
}

// CapturePurchase godoc
// @Summary 验证 PayPal 订单并解锁内容
// @Tags 支付
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body CapturePurchaseRequest true "订单信息"
// @Success 201 {object} util.Response{data=model.Purchase}
// @Failure 402 {object} util.Response "订单未完成或金额不符"
// @Failure 409 {object} util.Response "订单已处理"
// @Router /api/payments/purchase [post]
func (c *PaymentController) CapturePurchase(ctx *gin.Context) {
	var req CapturePurchaseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	purchase, err := c.PaymentService.CapturePurchase(ctx.Request.Context(),
		util.ViewerID(ctx), req.OrderID, model.ContentType(req.ContentType), req.ContentID)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrOrderAlreadyProcessed):
			util.Error(ctx, 409, err.Error())
		case errors.Is(err, util.ErrOrderNotCompleted), errors.Is(err, util.ErrOrderAmountMismatch):
			util.Error(ctx, 402, err.Error())
		case errors.Is(err, util.ErrContentNotFound):
			util.NotFound(ctx, "内容不存在")
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Created(ctx, purchase)
}

// VerifySubscriptionRequest 订阅验证请求
// swagger:model VerifySubscriptionRequest
type VerifySubscriptionRequest struct {
	OrderID    string `json:"orderId" binding:"required"`
	PriceCents int    `json:"priceCents" binding:"required,min=1"`
}

// VerifySubscription godoc
// @Summary 验证订阅付款并续期 30 天
// @Tags 支付
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body VerifySubscriptionRequest true "订单信息"
// @Success 200 {object} util.Response{data=model.Subscription}
// @Failure 402 {object} util.Response "订单未完成或金额不符"
// @Failure 409 {object} util.Response "订单已处理"
// @Router /api/payments/subscription [post]
func (c *PaymentController) VerifySubscription(ctx *gin.Context) {
	var req VerifySubscriptionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	sub, err := c.PaymentService.VerifySubscription(ctx.Request.Context(),
		util.ViewerID(ctx), req.OrderID, req.PriceCents)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrOrderAlreadyProcessed):
			util.Error(ctx, 409, err.Error())
		case errors.Is(err, util.ErrOrderNotCompleted), errors.Is(err, util.ErrOrderAmountMismatch):
			util.Error(ctx, 402, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, sub)
}
