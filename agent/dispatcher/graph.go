package dispatcher

import (
	"context"
	"fmt"

	"github.com/cloudwego/eino/compose"

	dispatchnode "deskrouter/agent/nodes"
)

func (d *Dispatcher) compileDispatchGraph(
	ctx context.Context,
) (compose.Runnable[dispatchnode.GraphInput, dispatchnode.GraphOutput], error) {
	graph := compose.NewGraph[dispatchnode.GraphInput, dispatchnode.GraphOutput]()

	if err := graph.AddLambdaNode("validate_request",
		compose.InvokableLambda(func(ctx context.Context, in dispatchnode.GraphInput) (*dispatchnode.GraphState, error) {
			return dispatchnode.ValidateRequest(in, d.now)
		}),
	); err != nil {
		return nil, fmt.Errorf("add node validate_request: %w", err)
	}

	if err := graph.AddLambdaNode("ensure_conversation",
		compose.InvokableLambda(func(ctx context.Context, in *dispatchnode.GraphState) (*dispatchnode.GraphState, error) {
			return dispatchnode.EnsureConversation(ctx, in, d.store, d.userID)
		}),
	); err != nil {
		return nil, fmt.Errorf("add node ensure_conversation: %w", err)
	}

	if err := graph.AddLambdaNode("append_user_message",
		compose.InvokableLambda(func(ctx context.Context, in *dispatchnode.GraphState) (*dispatchnode.GraphState, error) {
			return dispatchnode.AppendUserMessage(ctx, in, d.store)
		}),
	); err != nil {
		return nil, fmt.Errorf("add node append_user_message: %w", err)
	}

	if err := graph.AddLambdaNode("classify_message",
		compose.InvokableLambda(func(ctx context.Context, in *dispatchnode.GraphState) (*dispatchnode.GraphState, error) {
			return dispatchnode.ClassifyMessage(in, d.classifier)
		}),
	); err != nil {
		return nil, fmt.Errorf("add node classify_message: %w", err)
	}

	if err := graph.AddLambdaNode("invoke_handler",
		compose.InvokableLambda(func(ctx context.Context, in *dispatchnode.GraphState) (*dispatchnode.GraphState, error) {
			return dispatchnode.InvokeHandler(ctx, in, d.registry, d.handlerTimeout)
		}),
	); err != nil {
		return nil, fmt.Errorf("add node invoke_handler: %w", err)
	}

	if err := graph.AddLambdaNode("append_agent_message",
		compose.InvokableLambda(func(ctx context.Context, in *dispatchnode.GraphState) (*dispatchnode.GraphState, error) {
			return dispatchnode.AppendAgentMessage(ctx, in, d.store)
		}),
	); err != nil {
		return nil, fmt.Errorf("add node append_agent_message: %w", err)
	}

	if err := graph.AddLambdaNode("finalize_reply",
		compose.InvokableLambda(func(ctx context.Context, in *dispatchnode.GraphState) (dispatchnode.GraphOutput, error) {
			return dispatchnode.FinalizeReply(in)
		}),
	); err != nil {
		return nil, fmt.Errorf("add node finalize_reply: %w", err)
	}

	edges := [][2]string{
		{compose.START, "validate_request"},
		{"validate_request", "ensure_conversation"},
		{"ensure_conversation", "append_user_message"},
		{"append_user_message", "classify_message"},
		{"classify_message", "invoke_handler"},
		{"invoke_handler", "append_agent_message"},
		{"append_agent_message", "finalize_reply"},
		{"finalize_reply", compose.END},
	}

	for _, edge := range edges {
		if err := graph.AddEdge(edge[0], edge[1]); err != nil {
			return nil, fmt.Errorf("add edge %s->%s: %w", edge[0], edge[1], err)
		}
	}

	runner, err := graph.Compile(ctx, compose.WithGraphName("dispatcher.dispatch"))
	if err != nil {
		return nil, fmt.Errorf("compile dispatch graph: %w", err)
	}
	return runner, nil
}
