package scheduler

import (
	"errors"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
)

// RetryScheduler executa tarefas adiadas uma única vez, identificadas por chave (o id do job).
// Agendar de novo a mesma chave substitui a tarefa pendente.
type RetryScheduler struct {
	scheduler *gocron.Scheduler
	mu        sync.Mutex
	pending   map[string]time.Time
}

func NewRetryScheduler() *RetryScheduler {
	s := gocron.NewScheduler(time.Local)
	s.TagsUnique()

	return &RetryScheduler{
		scheduler: s,
		pending:   make(map[string]time.Time),
	}
}

// Start inicia o agendador em background
func (r *RetryScheduler) Start() {
	r.scheduler.StartAsync()
	logrus.Info("Agendador de retentativas de publicação iniciado")
}

func (r *RetryScheduler) Stop() {
	r.scheduler.Stop()
	logrus.Info("Agendador de retentativas de publicação parado")
}

func (r *RetryScheduler) Schedule(key string, delay time.Duration, task func()) error {
	r.Cancel(key)

	if delay <= 0 {
		go task()
		return nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.scheduler.
		Every(delay).
		WaitForSchedule().
		LimitRunsTo(1).
		Tag(key).
		Do(func() {
			r.release(key)
			task()
		})
	if err != nil {
		return err
	}

	r.pending[key] = time.Now().Add(delay)

	logrus.WithFields(logrus.Fields{
		"key":    key,
		"delay":  delay.String(),
		"run_at": r.pending[key].Format(time.RFC3339),
	}).Debug("Tarefa adiada agendada")

	return nil
}

func (r *RetryScheduler) Cancel(key string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.pending[key]; !ok {
		return
	}
	delete(r.pending, key)

	if err := r.scheduler.RemoveByTag(key); err != nil && !errors.Is(err, gocron.ErrJobNotFoundWithTag) {
		logrus.WithFields(logrus.Fields{
			"key":   key,
			"error": err.Error(),
		}).Warn("Erro ao remover tarefa adiada")
	}
}

// release tira a chave do controle antes da execução, liberando a tag para um novo agendamento
func (r *RetryScheduler) release(key string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.pending[key]; !ok {
		return
	}
	delete(r.pending, key)
	_ = r.scheduler.RemoveByTag(key)
}

// Pending retorna quantas tarefas aguardam execução
func (r *RetryScheduler) Pending() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.pending)
}
