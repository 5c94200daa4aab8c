package commands_test

import (
	"context"
	"errors"
	"testing"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/review"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/pkg/clock"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type SubmitReviewCommandHandlerSuite struct {
	suite.Suite

	ctx        context.Context
	orderRepo  *MockOrderRepository
	reviewRepo *MockReviewRepository
	ratingRepo *MockRatingRepository
	uow        *MockReviewUoW
	factory    *MockReviewUoWFactory
	handler    commands.SubmitReviewCommandHandler
}

func TestSubmitReviewCommandHandler(t *testing.T) {
	suite.Run(t, new(SubmitReviewCommandHandlerSuite))
}

func (s *SubmitReviewCommandHandlerSuite) SetupTest() {
	s.ctx = context.Background()
	s.orderRepo = new(MockOrderRepository)
	s.reviewRepo = new(MockReviewRepository)
	s.ratingRepo = new(MockRatingRepository)
	s.uow = new(MockReviewUoW)
	s.factory = new(MockReviewUoWFactory)

	s.factory.On("Create").Return(s.uow)
	s.uow.On("Begin", s.ctx).Return(nil)
	s.uow.On("Rollback", s.ctx).Return(nil)
	s.uow.On("OrderRepository").Return(s.orderRepo)
	s.uow.On("ReviewRepository").Return(s.reviewRepo)
	s.uow.On("RatingRepository").Return(s.ratingRepo)

	s.handler = commands.NewSubmitReviewCommandHandler(
		s.factory, clock.NewFixed(t0), services.NewRatingAggregator())
}

func (s *SubmitReviewCommandHandlerSuite) command(o *order.Order, from string, rating int) commands.SubmitReviewCommand {
	cmd, err := commands.NewSubmitReviewCommand(kernel.NewUUID(), o.ID(), mustUser(s.T(), from), rating, " fast and friendly ")
	s.Require().NoError(err)
	return cmd
}

func (s *SubmitReviewCommandHandlerSuite) TestBuyerReviewRefreshesSellerRating() {
	o := orderIn(s.T(), order.Delivered)
	cmd := s.command(o, "buyer-1", 4)
	seller := o.SellerID()
	five, _ := review.NewRating(5)
	four, _ := review.NewRating(4)

	var stored *review.Review
	s.reviewRepo.On("Exists", s.ctx, o.ID(), cmd.FromUserID()).Return(false, nil).Once()
	s.orderRepo.On("Get", s.ctx, o.ID()).Return(o, nil).Once()
	s.reviewRepo.On("Add", s.ctx, mock.AnythingOfType("*review.Review")).
		Run(func(args mock.Arguments) { stored = args.Get(1).(*review.Review) }).
		Return(nil).Once()
	s.ratingRepo.On("Lock", s.ctx, seller).Return(nil).Once()
	s.reviewRepo.On("ListRatings", s.ctx, seller, review.RoleBuyerToSeller).
		Return([]review.Rating{five, four, four}, nil).Once()
	s.ratingRepo.On("Save", s.ctx, mock.MatchedBy(func(summary review.RatingSummary) bool {
		return summary.UserID().IsEqual(seller) && summary.Average().String() == "4.3" && summary.Count() == 3
	})).Return(nil).Once()
	s.orderRepo.On("Update", s.ctx, o).Return(nil).Once()
	s.uow.On("Commit", s.ctx).Return(nil).Once()

	s.Require().NoError(s.handler.Handle(s.ctx, cmd))

	s.Require().NotNil(stored)
	s.Equal(review.RoleBuyerToSeller, stored.Role())
	s.True(stored.ToUserID().IsEqual(seller))
	s.Equal("fast and friendly", stored.Comment())
	s.Equal(o.Product().ID(), stored.ProductID())
	s.True(o.BuyerReviewed())
	s.False(o.SellerReviewed())
	s.orderRepo.AssertExpectations(s.T())
	s.reviewRepo.AssertExpectations(s.T())
	s.ratingRepo.AssertExpectations(s.T())
}

func (s *SubmitReviewCommandHandlerSuite) TestSellerReviewLeavesRatingAlone() {
	o := orderIn(s.T(), order.Delivered)
	cmd := s.command(o, "seller-1", 5)

	s.reviewRepo.On("Exists", s.ctx, o.ID(), cmd.FromUserID()).Return(false, nil).Once()
	s.orderRepo.On("Get", s.ctx, o.ID()).Return(o, nil).Once()
	s.reviewRepo.On("Add", s.ctx, mock.MatchedBy(func(r *review.Review) bool {
		return r.Role() == review.RoleSellerToBuyer && r.ToUserID().IsEqual(o.BuyerID())
	})).Return(nil).Once()
	s.orderRepo.On("Update", s.ctx, o).Return(nil).Once()
	s.uow.On("Commit", s.ctx).Return(nil).Once()

	s.Require().NoError(s.handler.Handle(s.ctx, cmd))

	s.True(o.SellerReviewed())
	s.reviewRepo.AssertNotCalled(s.T(), "ListRatings", mock.Anything, mock.Anything, mock.Anything)
	s.ratingRepo.AssertNotCalled(s.T(), "Lock", mock.Anything, mock.Anything)
	s.ratingRepo.AssertNotCalled(s.T(), "Save", mock.Anything, mock.Anything)
}

func (s *SubmitReviewCommandHandlerSuite) TestSecondReviewIsRejected() {
	o := orderIn(s.T(), order.Delivered)
	cmd := s.command(o, "buyer-1", 2)
	s.orderRepo.On("Get", s.ctx, o.ID()).Return(o, nil).Once()
	s.reviewRepo.On("Exists", s.ctx, o.ID(), cmd.FromUserID()).Return(true, nil).Once()

	err := s.handler.Handle(s.ctx, cmd)

	s.Require().ErrorIs(err, errs.ErrAlreadyReviewed)
	s.reviewRepo.AssertNotCalled(s.T(), "Add", mock.Anything, mock.Anything)
	s.uow.AssertNotCalled(s.T(), "Commit", mock.Anything)
}

func (s *SubmitReviewCommandHandlerSuite) TestOrderNotDeliveredIsRejected() {
	for _, status := range []order.Status{order.Initiated, order.Confirmed, order.Disputed, order.Cancelled} {
		s.Run(status.String(), func() {
			o := orderIn(s.T(), status)
			cmd := s.command(o, "buyer-1", 5)
			s.reviewRepo.On("Exists", s.ctx, o.ID(), cmd.FromUserID()).Return(false, nil).Once()
			s.orderRepo.On("Get", s.ctx, o.ID()).Return(o, nil).Once()

			err := s.handler.Handle(s.ctx, cmd)

			s.Require().ErrorIs(err, errs.ErrOrderNotDeliverable)
			s.False(o.BuyerReviewed())
		})
	}
	s.reviewRepo.AssertNotCalled(s.T(), "Add", mock.Anything, mock.Anything)
	s.uow.AssertNotCalled(s.T(), "Commit", mock.Anything)
}

func (s *SubmitReviewCommandHandlerSuite) TestStrangerSeesOrderAsMissing() {
	for _, status := range []order.Status{order.Delivered, order.Initiated, order.Disputed} {
		s.Run(status.String(), func() {
			o := orderIn(s.T(), status)
			cmd := s.command(o, "someone-else", 1)
			s.orderRepo.On("Get", s.ctx, o.ID()).Return(o, nil).Once()

			err := s.handler.Handle(s.ctx, cmd)

			s.Require().ErrorIs(err, errs.ErrObjectNotFound)
			s.NotErrorIs(err, errs.ErrOrderNotDeliverable)
		})
	}
	s.reviewRepo.AssertNotCalled(s.T(), "Exists", mock.Anything, mock.Anything, mock.Anything)
	s.reviewRepo.AssertNotCalled(s.T(), "Add", mock.Anything, mock.Anything)
	s.uow.AssertNotCalled(s.T(), "Commit", mock.Anything)
}

func (s *SubmitReviewCommandHandlerSuite) TestRatingLockErrorAbortsReview() {
	o := orderIn(s.T(), order.Delivered)
	cmd := s.command(o, "buyer-1", 5)
	s.orderRepo.On("Get", s.ctx, o.ID()).Return(o, nil).Once()
	s.reviewRepo.On("Exists", s.ctx, o.ID(), cmd.FromUserID()).Return(false, nil).Once()
	s.reviewRepo.On("Add", s.ctx, mock.Anything).Return(nil).Once()
	s.ratingRepo.On("Lock", s.ctx, o.SellerID()).Return(errs.ErrStoreUnavailable).Once()

	err := s.handler.Handle(s.ctx, cmd)

	s.Require().ErrorIs(err, errs.ErrStoreUnavailable)
	s.reviewRepo.AssertNotCalled(s.T(), "ListRatings", mock.Anything, mock.Anything, mock.Anything)
	s.uow.AssertNotCalled(s.T(), "Commit", mock.Anything)
}

func (s *SubmitReviewCommandHandlerSuite) TestDuplicateInsertRollsBack() {
	o := orderIn(s.T(), order.Delivered)
	cmd := s.command(o, "buyer-1", 5)
	s.reviewRepo.On("Exists", s.ctx, o.ID(), cmd.FromUserID()).Return(false, nil).Once()
	s.orderRepo.On("Get", s.ctx, o.ID()).Return(o, nil).Once()
	s.reviewRepo.On("Add", s.ctx, mock.Anything).Return(errs.ErrAlreadyReviewed).Once()

	err := s.handler.Handle(s.ctx, cmd)

	s.Require().ErrorIs(err, errs.ErrAlreadyReviewed)
	s.uow.AssertCalled(s.T(), "Rollback", s.ctx)
	s.uow.AssertNotCalled(s.T(), "Commit", mock.Anything)
	s.False(o.BuyerReviewed())
}

func (s *SubmitReviewCommandHandlerSuite) TestRatingSaveErrorAbortsReview() {
	o := orderIn(s.T(), order.Delivered)
	cmd := s.command(o, "buyer-1", 5)
	s.reviewRepo.On("Exists", s.ctx, o.ID(), cmd.FromUserID()).Return(false, nil).Once()
	s.orderRepo.On("Get", s.ctx, o.ID()).Return(o, nil).Once()
	s.reviewRepo.On("Add", s.ctx, mock.Anything).Return(nil).Once()
	s.ratingRepo.On("Lock", s.ctx, o.SellerID()).Return(nil).Once()
	s.reviewRepo.On("ListRatings", s.ctx, o.SellerID(), review.RoleBuyerToSeller).
		Return([]review.Rating{cmd.Rating()}, nil).Once()
	s.ratingRepo.On("Save", s.ctx, mock.Anything).Return(errors.New("save error")).Once()

	err := s.handler.Handle(s.ctx, cmd)

	s.Require().EqualError(err, "save error")
	s.orderRepo.AssertNotCalled(s.T(), "Update", mock.Anything, mock.Anything)
	s.uow.AssertNotCalled(s.T(), "Commit", mock.Anything)
}

func TestSubmitReviewCommandHandler_ZeroValueCommand(t *testing.T) {
	h := commands.NewSubmitReviewCommandHandler(new(MockReviewUoWFactory), clock.NewFixed(t0), services.NewRatingAggregator())

	err := h.Handle(t.Context(), commands.SubmitReviewCommand{})

	assert.ErrorIs(t, err, commands.ErrSubmitReviewCommandIsNotConstructed)
}
