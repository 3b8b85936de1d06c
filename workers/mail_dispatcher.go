package workers

import (
	"errors"
	"log"
	"sync"
)

// MailSender é o que o dispatcher precisa de um transporte de e-mail.
type MailSender interface {
	Send(to, subject, htmlBody string) error
}

type mailJob struct {
	to      string
	subject string
	body    string
}

// MailDispatcher entrega e-mail em best-effort: Dispatch enfileira e retorna;
// uma goroutine única drena a fila e loga falhas de entrega sem propagá-las.
// Só o próprio enfileiramento (fila cheia ou dispatcher parado) gera erro.
type MailDispatcher struct {
	sender MailSender
	jobs   chan mailJob
	done   chan struct{}

	mu      sync.Mutex
	stopped bool
}

// StartMailDispatcher sobe o worker com uma fila de queueSize posições.
func StartMailDispatcher(sender MailSender, queueSize int) *MailDispatcher {
	if queueSize <= 0 {
		queueSize = 64
	}

	d := &MailDispatcher{
		sender: sender,
		jobs:   make(chan mailJob, queueSize),
		done:   make(chan struct{}),
	}

	go func() {
		defer close(d.done)
		for job := range d.jobs {
			if err := d.sender.Send(job.to, job.subject, job.body); err != nil {
				log.Printf("mail worker: send failed to=%s subject=%q err=%v", job.to, job.subject, err)
				continue
			}
			log.Printf("mail worker: sent to=%s subject=%q", job.to, job.subject)
		}
	}()

	return d
}

// Send enfileira a mensagem. Nunca bloqueia o request.
func (d *MailDispatcher) Send(to, subject, htmlBody string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return errors.New("mail dispatcher stopped")
	}

	select {
	case d.jobs <- mailJob{to: to, subject: subject, body: htmlBody}:
		return nil
	default:
		return errors.New("mail queue full")
	}
}

// Stop fecha a fila e espera drenar o que já foi aceito.
func (d *MailDispatcher) Stop() {
	d.mu.Lock()
	if d.stopped {
		d.mu.Unlock()
		<-d.done
		return
	}
	d.stopped = true
	close(d.jobs)
	d.mu.Unlock()

	<-d.done
}
