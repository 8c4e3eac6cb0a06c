package database

import (
	"fmt"
	"log"

	"github.com/The-Hackers-Corner/thc-website/models"
	"github.com/The-Hackers-Corner/thc-website/services"
	"github.com/The-Hackers-Corner/thc-website/utils"
)

// Seed 写入演示数据：分类、题目、用户和一批提交记录。
// 提交全部走提交服务，计分和排行与线上路径完全一致。
func Seed() error {
	var userCount int64
	DB.Model(&models.User{}).Count(&userCount)
	if userCount > 0 {
		log.Println("Database already contains users, skipping seed.")
		return nil
	}

	categories := []models.Category{
		{Name: "Web Exploitation", Slug: "web-exploitation", Description: "Challenges involving web vulnerabilities, SQL injection, XSS, and more."},
		{Name: "Cryptography", Slug: "cryptography", Description: "Encryption, decryption, and cryptographic puzzles."},
		{Name: "Forensics", Slug: "forensics", Description: "Digital forensics, file analysis, and data recovery challenges."},
		{Name: "Reverse Engineering", Slug: "reverse-engineering", Description: "Binary analysis, malware analysis, and reverse engineering tasks."},
		{Name: "Miscellaneous", Slug: "miscellaneous", Description: "Various challenges that don't fit into other categories."},
	}
	for i := range categories {
		if err := DB.Create(&categories[i]).Error; err != nil {
			return fmt.Errorf("seed category %q: %w", categories[i].Name, err)
		}
	}

	type seedChallenge struct {
		category int
		title    string
		desc     string
		flag     string
		points   uint
	}
	seedChallenges := []seedChallenge{
		{0, "SQL Injection Basics", "Find the flag by exploiting a SQL injection vulnerability in the login form.", "THC{SQL_INJECTION_101}", 100},
		{0, "XSS Challenge", "Inject a script to steal the admin cookie and retrieve the flag.", "THC{XSS_MASTER}", 150},
		{0, "Directory Traversal", "Navigate through directories to find the hidden flag file.", "THC{DIR_TRAVERSAL}", 75},
		{1, "Caesar Cipher", "Decode this message: KHO{FRPSXWHU_VHFXULWB}", "THC{COMPUTER_SECURITY}", 50},
		{1, "Base64 Encoding", "Decode this base64 string: VEhDe0JBU0U2NF9GTEFHfQ==", "THC{BASE64_FLAG}", 50},
		{1, "RSA Challenge", "Decrypt the RSA encrypted message using the provided public key.", "THC{RSA_DECRYPTED}", 200},
		{2, "Hidden in Image", "The flag is hidden in this image file. Use steganography tools to extract it.", "THC{STEGANOGRAPHY}", 125},
		{2, "PCAP Analysis", "Analyze this network capture file to find the exfiltrated data.", "THC{PCAP_ANALYSIS}", 175},
		{3, "Crack the Binary", "Reverse engineer this binary to find the correct password.", "THC{REVERSE_ENGINEER}", 250},
		{3, "Assembly Analysis", "Analyze the assembly code to understand what this program does.", "THC{ASSEMBLY_MASTER}", 300},
		{4, "Welcome Challenge", "Your first flag! Welcome to THC CTF Arena.", "THC{WELCOME_TO_THC}", 10},
		{4, "OSINT Challenge", "Use open source intelligence to find information about this target.", "THC{OSINT_SKILLS}", 150},
	}

	challenges := make([]models.Challenge, 0, len(seedChallenges))
	flags := make([]string, 0, len(seedChallenges))
	for _, sc := range seedChallenges {
		hashed, err := models.HashFlag(sc.flag)
		if err != nil {
			return fmt.Errorf("seed flag hash: %w", err)
		}
		challenge := models.Challenge{
			CategoryID:  categories[sc.category].ID,
			Title:       sc.title,
			Description: sc.desc,
			Flag:        hashed,
			Points:      sc.points,
			IsActive:    true,
		}
		if err := DB.Create(&challenge).Error; err != nil {
			return fmt.Errorf("seed challenge %q: %w", sc.title, err)
		}
		challenges = append(challenges, challenge)
		flags = append(flags, sc.flag)
	}

	// 一道隐藏的练习题，Flag 随机生成
	sandboxHash, err := models.HashFlag(utils.GenerateFlag())
	if err != nil {
		return fmt.Errorf("seed sandbox flag: %w", err)
	}
	sandbox := models.Challenge{
		CategoryID:  categories[4].ID,
		Title:       "Sandbox",
		Description: "Staging challenge for admins, not visible to players.",
		Flag:        sandboxHash,
		Points:      0,
		IsActive:    false,
	}
	if err := DB.Create(&sandbox).Error; err != nil {
		return fmt.Errorf("seed sandbox challenge: %w", err)
	}

	seedUsers := []models.User{
		{Name: "Admin User", Email: "admin@thc.local", Password: "password", IsAdmin: true},
		{Name: "Alice Hacker", Email: "alice@thc.local", Password: "password"},
		{Name: "Bob Security", Email: "bob@thc.local", Password: "password"},
		{Name: "Charlie Crypto", Email: "charlie@thc.local", Password: "password"},
		{Name: "Diana Forensics", Email: "diana@thc.local", Password: "password"},
	}
	for i := range seedUsers {
		if err := DB.Create(&seedUsers[i]).Error; err != nil {
			return fmt.Errorf("seed user %q: %w", seedUsers[i].Name, err)
		}
	}

	submitter := services.NewSubmissionService(DB)
	submit := func(user, challenge int, flag string) error {
		_, err := submitter.SubmitFlag(seedUsers[user].ID, challenges[challenge].ID, flag)
		if err != nil && !services.IsRejection(err) {
			return fmt.Errorf("seed submission user=%d challenge=%d: %w", user, challenge, err)
		}
		return nil
	}

	solves := []struct {
		user       int
		challenges []int
	}{
		{1, []int{0, 3, 4, 10}}, // Alice
		{2, []int{1, 2, 6, 10}}, // Bob
		{3, []int{3, 4, 5, 10}}, // Charlie
		{4, []int{6, 7, 10}},    // Diana
	}
	for _, s := range solves {
		for _, ci := range s.challenges {
			if err := submit(s.user, ci, flags[ci]); err != nil {
				return err
			}
		}
	}

	// 一些答错的提交，让日志更真实
	wrongAttempts := []struct {
		user, challenge int
		flag            string
	}{
		{1, 1, "wrong_flag"},
		{2, 5, "incorrect_flag_attempt"},
		{3, 8, "wrong_password"},
	}
	for _, w := range wrongAttempts {
		if err := submit(w.user, w.challenge, w.flag); err != nil {
			return err
		}
	}

	log.Println("Database seeded with demo data.")
	return nil
}
