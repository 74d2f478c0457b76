package gosesclassic

import (
	"context"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/ses"
	"go.uber.org/zap"

	"github.com/ggarcia209/go-ses/sesmodel"
)

// CreateReceiptRuleSet creates an empty, inactive rule set.
func (c *Classic) CreateReceiptRuleSet(ctx context.Context, req *sesmodel.CreateReceiptRuleSetRequest) error {
	if req == nil {
		return NewInvalidRequestError("nil request")
	}

	_, err := c.svc.CreateReceiptRuleSetWithContext(ctx, &ses.CreateReceiptRuleSetInput{
		RuleSetName: req.RuleSetName,
	})
	if err != nil {
		return classicError("c.svc.CreateReceiptRuleSet", err)
	}

	c.logger.Info("receipt rule set created", zap.Stringp("ruleSet", req.RuleSetName))
	return nil
}

// DeleteReceiptRuleSet deletes a rule set and its rules. The active set
// cannot be deleted.
func (c *Classic) DeleteReceiptRuleSet(ctx context.Context, req *sesmodel.DeleteReceiptRuleSetRequest) error {
	if req == nil {
		return NewInvalidRequestError("nil request")
	}

	_, err := c.svc.DeleteReceiptRuleSetWithContext(ctx, &ses.DeleteReceiptRuleSetInput{
		RuleSetName: req.RuleSetName,
	})
	if err != nil {
		return classicError("c.svc.DeleteReceiptRuleSet", err)
	}

	c.logger.Info("receipt rule set deleted", zap.Stringp("ruleSet", req.RuleSetName))
	return nil
}

func (c *Classic) DescribeReceiptRuleSet(ctx context.Context, req *sesmodel.DescribeReceiptRuleSetRequest) (*sesmodel.DescribeReceiptRuleSetResult, error) {
	if req == nil {
		return nil, NewInvalidRequestError("nil request")
	}

	out, err := c.svc.DescribeReceiptRuleSetWithContext(ctx, &ses.DescribeReceiptRuleSetInput{
		RuleSetName: req.RuleSetName,
	})
	if err != nil {
		return nil, classicError("c.svc.DescribeReceiptRuleSet", err)
	}

	return fromRuleSet(out.Metadata, out.Rules), nil
}

// DescribeActiveReceiptRuleSet returns the set SES evaluates incoming mail
// against. Metadata is absent and Rules empty when no set is active.
func (c *Classic) DescribeActiveReceiptRuleSet(ctx context.Context) (*sesmodel.DescribeActiveReceiptRuleSetResult, error) {
	out, err := c.svc.DescribeActiveReceiptRuleSetWithContext(ctx, &ses.DescribeActiveReceiptRuleSetInput{})
	if err != nil {
		return nil, classicError("c.svc.DescribeActiveReceiptRuleSet", err)
	}

	return fromRuleSet(out.Metadata, out.Rules), nil
}

// SetActiveReceiptRuleSet makes the named set active. An absent RuleSetName
// leaves no set active, so incoming mail is no longer processed.
func (c *Classic) SetActiveReceiptRuleSet(ctx context.Context, req *sesmodel.SetActiveReceiptRuleSetRequest) error {
	if req == nil {
		return NewInvalidRequestError("nil request")
	}

	_, err := c.svc.SetActiveReceiptRuleSetWithContext(ctx, &ses.SetActiveReceiptRuleSetInput{
		RuleSetName: req.RuleSetName,
	})
	if err != nil {
		return classicError("c.svc.SetActiveReceiptRuleSet", err)
	}

	if req.RuleSetName == nil {
		c.logger.Warn("receipt rule sets deactivated")
		return nil
	}
	c.logger.Info("receipt rule set activated", zap.Stringp("ruleSet", req.RuleSetName))
	return nil
}

// ListReceiptRuleSets returns one page of rule sets. A nil request reads the
// first page.
func (c *Classic) ListReceiptRuleSets(ctx context.Context, req *sesmodel.ListReceiptRuleSetsRequest) (*sesmodel.ListReceiptRuleSetsResult, error) {
	input := &ses.ListReceiptRuleSetsInput{}
	if req != nil {
		input.NextToken = req.NextToken
	}

	out, err := c.svc.ListReceiptRuleSetsWithContext(ctx, input)
	if err != nil {
		return nil, classicError("c.svc.ListReceiptRuleSets", err)
	}

	res := sesmodel.NewListReceiptRuleSetsResult()
	for _, m := range out.RuleSets {
		if m != nil {
			res.AddRuleSets(fromRuleSetMetadata(m))
		}
	}
	res.NextToken = out.NextToken
	return res, nil
}

// CloneReceiptRuleSet creates RuleSetName holding a copy of every rule in
// OriginalRuleSetName. The new set is inactive.
func (c *Classic) CloneReceiptRuleSet(ctx context.Context, req *sesmodel.CloneReceiptRuleSetRequest) error {
	if req == nil {
		return NewInvalidRequestError("nil request")
	}

	_, err := c.svc.CloneReceiptRuleSetWithContext(ctx, &ses.CloneReceiptRuleSetInput{
		RuleSetName:         req.RuleSetName,
		OriginalRuleSetName: req.OriginalRuleSetName,
	})
	if err != nil {
		return classicError("c.svc.CloneReceiptRuleSet", err)
	}

	c.logger.Info("receipt rule set cloned",
		zap.Stringp("ruleSet", req.RuleSetName),
		zap.Stringp("original", req.OriginalRuleSetName),
	)
	return nil
}

// ReorderReceiptRuleSet sets the evaluation order of a rule set. Every rule
// in the set must be named exactly once.
func (c *Classic) ReorderReceiptRuleSet(ctx context.Context, req *sesmodel.ReorderReceiptRuleSetRequest) error {
	if req == nil {
		return NewInvalidRequestError("nil request")
	}
	if len(req.RuleNames) == 0 {
		return NewInvalidRequestError("no rule names")
	}
	seen := make(map[string]struct{}, len(req.RuleNames))
	for _, name := range req.RuleNames {
		if _, ok := seen[name]; ok {
			return NewInvalidRequestError("duplicate rule name " + name)
		}
		seen[name] = struct{}{}
	}

	_, err := c.svc.ReorderReceiptRuleSetWithContext(ctx, &ses.ReorderReceiptRuleSetInput{
		RuleSetName: req.RuleSetName,
		RuleNames:   aws.StringSlice(req.RuleNames),
	})
	if err != nil {
		return classicError("c.svc.ReorderReceiptRuleSet", err)
	}

	c.logger.Info("receipt rule set reordered",
		zap.Stringp("ruleSet", req.RuleSetName),
		zap.Strings("rules", req.RuleNames),
	)
	return nil
}

// SetReceiptRulePosition moves a rule to just after req.After, or to the
// front of the set when After is absent.
func (c *Classic) SetReceiptRulePosition(ctx context.Context, req *sesmodel.SetReceiptRulePositionRequest) error {
	if req == nil {
		return NewInvalidRequestError("nil request")
	}

	_, err := c.svc.SetReceiptRulePositionWithContext(ctx, &ses.SetReceiptRulePositionInput{
		RuleSetName: req.RuleSetName,
		RuleName:    req.RuleName,
		After:       req.After,
	})
	if err != nil {
		return classicError("c.svc.SetReceiptRulePosition", err)
	}

	c.logger.Info("receipt rule moved",
		zap.Stringp("ruleSet", req.RuleSetName),
		zap.Stringp("rule", req.RuleName),
		zap.Stringp("after", req.After),
	)
	return nil
}

// CreateReceiptFilter adds an account-wide IP filter.
func (c *Classic) CreateReceiptFilter(ctx context.Context, req *sesmodel.CreateReceiptFilterRequest) error {
	if req == nil || req.Filter == nil {
		return NewInvalidRequestError("nil filter")
	}

	_, err := c.svc.CreateReceiptFilterWithContext(ctx, &ses.CreateReceiptFilterInput{
		Filter: toReceiptFilter(req.Filter),
	})
	if err != nil {
		return classicError("c.svc.CreateReceiptFilter", err)
	}

	c.logger.Info("receipt filter created", zap.Stringer("filter", req.Filter))
	return nil
}

func (c *Classic) DeleteReceiptFilter(ctx context.Context, req *sesmodel.DeleteReceiptFilterRequest) error {
	if req == nil {
		return NewInvalidRequestError("nil request")
	}

	_, err := c.svc.DeleteReceiptFilterWithContext(ctx, &ses.DeleteReceiptFilterInput{
		FilterName: req.FilterName,
	})
	if err != nil {
		return classicError("c.svc.DeleteReceiptFilter", err)
	}

	c.logger.Info("receipt filter deleted", zap.Stringp("filter", req.FilterName))
	return nil
}

func (c *Classic) ListReceiptFilters(ctx context.Context) (*sesmodel.ListReceiptFiltersResult, error) {
	out, err := c.svc.ListReceiptFiltersWithContext(ctx, &ses.ListReceiptFiltersInput{})
	if err != nil {
		return nil, classicError("c.svc.ListReceiptFilters", err)
	}

	res := sesmodel.NewListReceiptFiltersResult()
	for _, f := range out.Filters {
		if f != nil {
			res.AddFilters(fromReceiptFilter(f))
		}
	}
	return res, nil
}
