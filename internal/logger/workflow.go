package logger

import (
	"go.temporal.io/sdk/workflow"
	"go.uber.org/zap"
)

// WorkflowInfo carries the identifying fields of a workflow execution so log
// lines and Sentry events can be correlated back to Temporal
type WorkflowInfo struct {
	WorkflowType string
	WorkflowID   string
	RunID        string
	Namespace    string
	TaskQueue    string
}

// GetWorkflowInfo extracts workflow information from workflow.Context
// Returns nil if workflow info is not available
func GetWorkflowInfo(ctx workflow.Context) *WorkflowInfo {
	info := workflow.GetInfo(ctx)
	if info == nil {
		return nil
	}

	workflowTypeName := info.WorkflowType.Name
	if workflowTypeName == "" {
		workflowTypeName = "unknown"
	}

	return &WorkflowInfo{
		WorkflowType: workflowTypeName,
		WorkflowID:   info.WorkflowExecution.ID,
		RunID:        info.WorkflowExecution.RunID,
		Namespace:    info.Namespace,
		TaskQueue:    info.TaskQueueName,
	}
}

// WithWorkflowInfo returns the global logger annotated with workflow fields
func WithWorkflowInfo(info WorkflowInfo) *zap.Logger {
	return log.With(
		zap.String("workflow_type", info.WorkflowType),
		zap.String("workflow_id", info.WorkflowID),
		zap.String("run_id", info.RunID),
		zap.String("namespace", info.Namespace),
		zap.String("task_queue", info.TaskQueue),
	)
}

// FromWorkflow returns a logger with workflow scope
// Usage:
//
//	workflowInfo := logger.GetWorkflowInfo(ctx)
//	logger.FromWorkflow(ctx, workflowInfo).Info("launch step completed", ...)
func FromWorkflow(ctx workflow.Context, info *WorkflowInfo) *zap.Logger {
	if info == nil {
		info = GetWorkflowInfo(ctx)
	}

	if info == nil {
		return log
	}

	return WithWorkflowInfo(*info)
}

// InfoWorkflow logs an info message annotated with workflow fields
func InfoWorkflow(info WorkflowInfo, msg string, fields ...zap.Field) {
	WithWorkflowInfo(info).Info(msg, fields...)
}

// ErrorWorkflow logs an error message annotated with workflow fields
func ErrorWorkflow(info WorkflowInfo, err error, fields ...zap.Field) {
	if err != nil {
		WithWorkflowInfo(info).Error(err.Error(), fields...)
	} else {
		WithWorkflowInfo(info).Error("error occurred", fields...)
	}
}

// WarnWorkflow logs a warning message annotated with workflow fields
func WarnWorkflow(info WorkflowInfo, msg string, fields ...zap.Field) {
	WithWorkflowInfo(info).Warn(msg, fields...)
}

// DebugWorkflow logs a debug message annotated with workflow fields
func DebugWorkflow(info WorkflowInfo, msg string, fields ...zap.Field) {
	WithWorkflowInfo(info).Debug(msg, fields...)
}

// InfoWf logs an info message with workflow context (shortcut for workflows)
func InfoWf(ctx workflow.Context, msg string, fields ...zap.Field) {
	info := GetWorkflowInfo(ctx)
	if info != nil {
		InfoWorkflow(*info, msg, fields...)
	} else {
		Info(msg, fields...)
	}
}

// ErrorWf logs an error message with workflow context (shortcut for workflows)
func ErrorWf(ctx workflow.Context, err error, fields ...zap.Field) {
	info := GetWorkflowInfo(ctx)
	if info != nil {
		ErrorWorkflow(*info, err, fields...)
	} else {
		Error(err, fields...)
	}
}

// WarnWf logs a warning message with workflow context (shortcut for workflows)
func WarnWf(ctx workflow.Context, msg string, fields ...zap.Field) {
	info := GetWorkflowInfo(ctx)
	if info != nil {
		WarnWorkflow(*info, msg, fields...)
	} else {
		Warn(msg, fields...)
	}
}

// DebugWf logs a debug message with workflow context (shortcut for workflows)
func DebugWf(ctx workflow.Context, msg string, fields ...zap.Field) {
	info := GetWorkflowInfo(ctx)
	if info != nil {
		DebugWorkflow(*info, msg, fields...)
	} else {
		Debug(msg, fields...)
	}
}
