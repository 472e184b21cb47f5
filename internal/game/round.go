package game

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"
	"sync"
	"time"

	"github.com/osse101/MishkaBot_Go/internal/domain"
	"github.com/osse101/MishkaBot_Go/internal/event"
	"github.com/osse101/MishkaBot_Go/internal/logger"
)

// round drives one session from prompt to finalize
type round struct {
	svc     *service
	session domain.Session
	scope   domain.Scope
}

func newRound(svc *service, session domain.Session, scope domain.Scope) *round {
	return &round{svc: svc, session: session, scope: scope}
}

// run is the round boundary: errors and panics stop here
func (r *round) run(ctx context.Context) {
	log := logger.FromContext(ctx)
	defer func() {
		if p := recover(); p != nil {
			log.Error(LogMsgRoundPanicked, "panic", p, "stack", string(debug.Stack()))
			r.announceFailure(ctx)
		}
	}()

	err := r.play(ctx)
	switch {
	case err == nil:
	case ctx.Err() != nil && errors.Is(err, ctx.Err()):
		log.Info(LogMsgRoundCanceled)
	default:
		log.Error(LogMsgRoundFailed, "error", err)
		r.announceFailure(ctx)
	}
}

func (r *round) play(ctx context.Context) error {
	cfg := r.svc.cfg

	sub, err := r.svc.messages.Subscribe(ctx, r.scope)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrContextSubscribe, err)
	}
	closeSub := sync.OnceFunc(sub.Close)
	defer closeSub()

	_, err = r.svc.messages.Send(ctx, r.scope, domain.Announcement{
		Kind:         domain.AnnouncementPrompt,
		JokeNumber:   r.session.JokeNumber,
		Prompt:       r.session.Prompt,
		GuessSeconds: int(cfg.GuessTimeout / time.Second),
	})
	if err != nil {
		return fmt.Errorf("%s: %w", ErrContextSendPrompt, err)
	}

	tracker := newGuessTracker(r.session.Answer)
	result, err := Collect(ctx, sub.Messages(), tracker.observe, CollectOptions{MaxMatches: 1, Timeout: cfg.GuessTimeout})
	if err != nil {
		return err
	}
	closeSub()

	guess := tracker.outcome(result)
	logger.FromContext(ctx).Info(LogMsgGuessPhaseEnded,
		"winner_id", guess.WinnerID, "score", guess.Score, "candidates", len(guess.Candidates), "timed_out", result.TimedOut)

	if ended, err := r.isEnded(ctx); err != nil || ended {
		return err
	}

	_, err = r.svc.messages.Send(ctx, r.scope, domain.Announcement{
		Kind:       domain.AnnouncementReveal,
		JokeNumber: r.session.JokeNumber,
		Answer:     r.session.Answer,
		WinnerID:   guess.WinnerID,
		Exact:      guess.Exact(),
	})
	if err != nil {
		return fmt.Errorf("%s: %w", ErrContextSendReveal, err)
	}

	if decideBranch(guess.HasWinner(), len(guess.Candidates), cfg.VoteWithoutWinner) == branchVote {
		return r.vote(ctx, guess)
	}
	_, err = r.finalize(ctx, guess, nil, false)
	return err
}

func (r *round) vote(ctx context.Context, guess guessOutcome) error {
	cfg := r.svc.cfg

	n, err := r.svc.sessions.UpdateSessionStateIfMatches(ctx, r.session.ID, domain.SessionStateCollecting, domain.SessionStateVoting)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrContextUpdateState, err)
	}
	if n == 0 {
		logger.FromContext(ctx).Debug(LogMsgVoteCASLost)
		return nil
	}

	if err := sleep(ctx, cfg.VoteDelay); err != nil {
		return err
	}
	if ended, err := r.isEnded(ctx); err != nil || ended {
		return err
	}

	ref, err := r.svc.messages.Send(ctx, r.scope, domain.Announcement{
		Kind:        domain.AnnouncementVote,
		JokeNumber:  r.session.JokeNumber,
		Prompt:      r.session.Prompt,
		Candidates:  guess.Candidates,
		VoteSeconds: int(cfg.VoteTimeout / time.Second),
	})
	if err != nil {
		return fmt.Errorf("%s: %w", ErrContextSendVote, err)
	}

	labels := candidateLabels(guess.Candidates)
	if err := r.svc.reactions.AttachOptions(ctx, ref, labels); err != nil {
		return fmt.Errorf("%s: %w", ErrContextAttachOptions, err)
	}
	reactions, err := r.svc.reactions.CollectReactions(ctx, ref, labels, cfg.VoteTimeout)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrContextCollectVotes, err)
	}

	entries := funniestEntries(guess.Candidates, Tally(labels, reactions))
	ended, err := r.finalize(ctx, guess, entries, true)
	if !ended {
		return err
	}

	if clearErr := r.svc.reactions.ClearOptions(ctx, ref); clearErr != nil {
		logger.FromContext(ctx).Warn(LogMsgClearOptionsFailed, "error", clearErr)
	}
	return err
}

// finalize ends the session and announces the outcome, unless someone else ended it first.
// It reports whether this call performed the Ended transition.
func (r *round) finalize(ctx context.Context, guess guessOutcome, entries []domain.FunnyEntry, voted bool) (bool, error) {
	log := logger.FromContext(ctx)

	if ended, err := r.isEnded(ctx); err != nil || ended {
		return false, err
	}

	var winnerID *string
	if guess.HasWinner() {
		winnerID = &guess.WinnerID
	}
	ok, err := r.svc.sessions.MarkEnded(ctx, r.session.ID, winnerID, entries)
	if err != nil {
		return false, fmt.Errorf("%s: %w", ErrContextMarkEnded, err)
	}
	if !ok {
		log.Debug(LogMsgRoundEndedExternally, "stage", "mark_ended")
		return false, nil
	}

	announcement, outcome := r.outcomeAnnouncement(guess, entries, voted)
	if _, err := r.svc.messages.Send(ctx, r.scope, announcement); err != nil {
		return true, fmt.Errorf("%s: %w", ErrContextSendOutcome, err)
	}

	log.Info(LogMsgRoundFinalized, "outcome", outcome, "winner_id", guess.WinnerID, "funniest", len(entries))
	r.svc.publish(ctx, event.NewRoundEndedEvent(r.session.ID, r.session.GuildID, event.RoundEndedPayloadV1{
		Outcome:         outcome,
		WinnerID:        guess.WinnerID,
		Exact:           guess.Exact(),
		Candidates:      len(guess.Candidates),
		FunniestCount:   len(entries),
		DurationSeconds: time.Since(r.session.CreatedAt).Seconds(),
	}))
	return true, nil
}

func (r *round) outcomeAnnouncement(guess guessOutcome, entries []domain.FunnyEntry, voted bool) (domain.Announcement, string) {
	a := domain.Announcement{
		JokeNumber: r.session.JokeNumber,
		Prompt:     r.session.Prompt,
		Answer:     r.session.Answer,
		WinnerID:   guess.WinnerID,
		Exact:      guess.Exact(),
		Funniest:   entries,
		AfterVote:  voted,
		NotEnough:  !voted && len(guess.Candidates) < MinVoteCandidates,
	}

	switch {
	case voted && guess.HasWinner():
		a.Kind = domain.AnnouncementWinners
		return a, domain.OutcomeWinnerVoted
	case voted && len(entries) > 0:
		a.Kind = domain.AnnouncementWinners
		return a, domain.OutcomeFunniestOnly
	case guess.HasWinner():
		a.Kind = domain.AnnouncementWinnerNoVote
		return a, domain.OutcomeWinner
	default:
		a.Kind = domain.AnnouncementNoWinner
		return a, domain.OutcomeNoWinner
	}
}

// isEnded is the guard run before every externally visible step
func (r *round) isEnded(ctx context.Context) (bool, error) {
	current, err := r.svc.sessions.GetSession(ctx, r.session.ID)
	if err != nil {
		return false, fmt.Errorf("%s: %w", ErrContextReadSession, err)
	}
	if current.IsEnded() {
		logger.FromContext(ctx).Debug(LogMsgRoundEndedExternally, "state", current.State)
		return true, nil
	}
	return false, nil
}

// announceFailure tells the starter the round broke. Best effort.
func (r *round) announceFailure(ctx context.Context) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), finalizeTimeout)
	defer cancel()

	_, err := r.svc.messages.Send(ctx, r.scope, domain.Announcement{
		Kind:        domain.AnnouncementRoundFailed,
		JokeNumber:  r.session.JokeNumber,
		MentionUser: r.session.StartedBy,
	})
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgFailureNoticeFailed, "error", err)
	}
}
